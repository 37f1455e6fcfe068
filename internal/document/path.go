package document

// DefaultOutputDir is where rendered documents go unless overridden.
const DefaultOutputDir = "output"

// OutputPath returns override when it is non-empty, otherwise
// output/<docType>-<documentNumber>.pdf. The path is not sanitized or
// cleaned and no directory is created.
func OutputPath(docType, documentNumber, override string) string {
	if override != "" {
		return override
	}
	return DefaultOutputDir + "/" + docType + "-" + documentNumber + ".pdf"
}
