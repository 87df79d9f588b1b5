package templates

import (
	"bytes"
	"go/format"
	"io"

	"github.com/valyala/quicktemplate"
)

// WriteOnGen writes the typed On1..OnN helpers of package reactive to w.
func WriteOnGen(w io.Writer, count int) {
	qw := quicktemplate.AcquireWriter(w)
	defer quicktemplate.ReleaseWriter(qw)
	streamOnGen(qw.N(), count)
}

// OnGen returns the gofmt'ed source of the typed On1..OnN helpers.
func OnGen(count int) ([]byte, error) {
	var buf bytes.Buffer
	WriteOnGen(&buf, count)
	return format.Source(buf.Bytes())
}

func streamOnGen(qw *quicktemplate.QWriter, count int) {
	qw.S("// Code generated by cmd/codegen. DO NOT EDIT.\n\npackage reactive\n")
	for n := 1; n <= count; n++ {
		streamOnN(qw, n)
	}
}

func streamOnN(qw *quicktemplate.QWriter, n int) {
	qw.S("\n// On")
	qw.D(n)
	qw.S(" returns an effect body that tracks only the given signals and passes\n")
	qw.S("// their values to fn, which runs untracked.\n")
	qw.S("func On")
	qw.D(n)
	qw.S("[")
	qw.S(prefixedStrings("T", n))
	qw.S(" any](\n")
	for i := 0; i < n; i++ {
		qw.S("\ts")
		qw.D(i)
		qw.S(" *ReadSignal[T")
		qw.D(i)
		qw.S("],\n")
	}
	qw.S("\tfn func(")
	qw.S(prefixedStrings("T", n))
	qw.S("),\n) func() {\n\treturn func() {\n")
	for i := 0; i < n; i++ {
		qw.S("\t\tv")
		qw.D(i)
		qw.S(" := s")
		qw.D(i)
		qw.S(".Get()\n")
	}
	qw.S("\t\ts0.rt.Untrack(func() {\n\t\t\tfn(")
	qw.S(prefixedStrings("v", n))
	qw.S(")\n\t\t})\n\t}\n}\n")
}
