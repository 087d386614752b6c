// Copyright Martin Halsall, 2026. All rights reserved.

package types

// BatchConfig holds settings for a batch extraction run.
type BatchConfig struct {
	// Vendor is the vendor profile name passed to the extractor.
	Vendor string `json:"vendor" yaml:"vendor"`

	// InputDir is the directory scanned for invoice PDFs.
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// OutputCSV is the output path handed to the extractor unchanged;
	// the extractor decides actual file naming.
	OutputCSV string `json:"output_csv" yaml:"output_csv"`

	// ExtractorCommand is the external extractor binary
	// (default "trade-invoice-extractor").
	ExtractorCommand string `json:"extractor_command" yaml:"extractor_command"`

	// LedgerPath, when set, records the run in a SQLite ledger.
	LedgerPath string `json:"ledger_path,omitempty" yaml:"ledger_path,omitempty"`
}

// VendorsConfig holds settings for vendor profile loading.
type VendorsConfig struct {
	// File is an optional YAML file of user-defined vendor profiles,
	// merged over the built-in ones.
	File string `json:"file,omitempty" yaml:"file,omitempty"`
}
