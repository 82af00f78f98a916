package routeros

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . SentenceReadWriter

// SentenceReadWriter writes request sentences and reads reply
// sentences from the router, one at a time.
type SentenceReadWriter interface {
	WriteSentence(words ...string) error
	ReadSentence() (words []string, err error)
}

type Logger interface {
	Debug(s string)
}
