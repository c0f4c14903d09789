package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// htmlWriter accumulates the first write error so components can emit markup
// without checking every call.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newWriter(ctx context.Context, w io.Writer) *htmlWriter {
	return &htmlWriter{ctx: ctx, w: w}
}

func (h *htmlWriter) raw(parts ...string) {
	for _, p := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, p)
	}
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) attr(name, value string) {
	h.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

func (h *htmlWriter) href(u string) {
	h.attr("href", string(templ.URL(u)))
}

func (h *htmlWriter) open(tag string, attrs ...string) {
	h.raw("<", tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		if attrs[i] == "href" || attrs[i] == "src" {
			h.attr(attrs[i], string(templ.URL(attrs[i+1])))
			continue
		}
		h.attr(attrs[i], attrs[i+1])
	}
	h.raw(">")
}

func (h *htmlWriter) close(tag string) {
	h.raw("</", tag, ">")
}

// element writes <tag attrs...>text</tag>.
func (h *htmlWriter) element(tag, text string, attrs ...string) {
	h.open(tag, attrs...)
	h.text(text)
	h.close(tag)
}

func (h *htmlWriter) component(c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
