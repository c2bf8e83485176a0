package dto

type ExportOutput struct {
	Path      string
	Sessions  int
	SizeBytes int
}

type ImportOutput struct {
	Sessions int
	Message  string
}
