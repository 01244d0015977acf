package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile string
	DataDir    string
	Dir        string
	GraphsDir  string
	Tiers      []string
	ReportDate string
	ReportName string
	ReportType []string
	LogFormat  string
	S3Bucket   string
	S3Prefix   string
	Profile    string
	Region     string
	NoBanner   bool
}
