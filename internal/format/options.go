package format

// Options controls generated text.
type Options struct {
	// GeneratorName goes into the "// DO NOT EDIT: generated by" header.
	// No header is written when it is empty.
	GeneratorName string
	// UseSpaces indents with IndentWidth spaces instead of tabs.
	UseSpaces   bool
	IndentWidth int
}

func (o Options) withDefaults() Options {
	if o.IndentWidth <= 0 {
		o.IndentWidth = 4
	}
	return o
}
