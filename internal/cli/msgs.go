package cli

// Short messages (one-liners)
const (
	MsgRootShort      = "Generate deprecated alias headers for renamed includes"
	MsgRootLong       = "aliashdr scans a source tree for headers using the new extension and\ngenerates companion deprecated headers using the old extension. Each\ngenerated file preserves the source header's license banner and include\nguard, emits a compiler deprecation warning, and forwards to the new\nheader via an include directive.\n\nWithout --apply the tool only reports what it would generate."
	MsgGenConfigShort = "Output a default configuration file"
	MsgVersionShort   = "Print version information"

	// Run phase messages
	MsgProcessingFormat = "\nProcessing %d %s files...\n"
	MsgProceedingFormat = "Proceeding to generate %d %s files...\n"
	MsgConfirmPrompt    = "Continue? (y/n): "
	MsgSkipping         = "Skipping file generation...\n"
	MsgDone             = "Done.\n"
)
