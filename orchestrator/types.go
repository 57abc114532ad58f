package orchestrator

type PrepareResult struct {
	Sentences  int
	OutputPath string
}

type AnalyzeResult struct {
	Rows        int
	LexiconSize int
	OutputPath  string
}

type ReportResult struct {
	Sentences  int
	Parts      int
	OutputPath string
}
