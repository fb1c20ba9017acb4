package props_test

import "io"

// layer is a bean with pointer-receiver setters.
type layer struct {
	name        string
	enabled     bool
	maxFeatures int32
	title       *string
}

func (l *layer) GetName() string          { return l.name }
func (l *layer) SetName(name string)      { l.name = name }
func (l *layer) IsEnabled() bool          { return l.enabled }
func (l *layer) SetEnabled(enabled bool)  { l.enabled = enabled }
func (l *layer) GetMaxFeatures() int32    { return l.maxFeatures }
func (l *layer) SetMaxFeatures(n int32)   { l.maxFeatures = n }
func (l *layer) GetTitle() *string        { return l.title }
func (l *layer) SetTitle(title *string)   { l.title = title }
func (l *layer) PrefixedName() string     { return "topp:" + l.name }
func (l *layer) Describe(w io.Writer) int { return 0 }
func (l *layer) GetStyle(name string) int { return 0 }
func (l *layer) SetBounds(x, y float64)   {}

type empty struct{}
