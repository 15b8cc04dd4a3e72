package dom

// File is one entry of a simulated file list.
type File struct {
	Name string
	Type string
	Data []byte
}

// DataTransfer carries clipboard text or a file list, mirroring the
// platform DataTransfer object.
type DataTransfer struct {
	data  map[string]string
	files []File
}

// NewDataTransfer creates an empty transfer object.
func NewDataTransfer() *DataTransfer {
	return &DataTransfer{data: map[string]string{}}
}

// SetData stores text for a format, e.g. "text/plain".
func (dt *DataTransfer) SetData(format, value string) {
	dt.data[format] = value
}

// GetData returns the text stored for a format, or "".
func (dt *DataTransfer) GetData(format string) string {
	return dt.data[format]
}

// AddFile appends a file to the transfer's list.
func (dt *DataTransfer) AddFile(f File) {
	dt.files = append(dt.files, f)
}

// Files returns the transfer's file list.
func (dt *DataTransfer) Files() []File { return dt.files }
