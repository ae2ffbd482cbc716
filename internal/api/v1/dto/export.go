package dto

// ExportRequest selects the comparison rows and the file format; format defaults to csv
type ExportRequest struct {
	Format          string `form:"format,default=csv" binding:"oneof=csv json xlsx"`
	Modality        string `form:"modality"`
	DifferencesOnly bool   `form:"differences_only"`
}

// CompareQuery returns the matrix selection part of the request
func (r ExportRequest) CompareQuery() CompareQuery {
	return CompareQuery{Modality: r.Modality, DifferencesOnly: r.DifferencesOnly}
}

// ContentType returns the MIME type of the export format
func (r ExportRequest) ContentType() string {
	switch r.Format {
	case "csv":
		return "text/csv"
	case "json":
		return "application/json"
	case "xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}

// Filename returns the attachment name for the export
func (r ExportRequest) Filename() string {
	return "speechbench-comparison." + r.Format
}
