package constants

// MessageCategory is the coarse class of a probe warning or error message.
type MessageCategory string

const (
	CategoryStructure MessageCategory = "structure"
	CategoryMetadata  MessageCategory = "metadata"
	CategoryText      MessageCategory = "text-extraction"
	CategoryEncoding  MessageCategory = "encoding"
	CategoryUnknown   MessageCategory = "unknown"
)
