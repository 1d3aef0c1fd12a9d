package stylemgr

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/sx/cssom/douceuradapter"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoHead is returned when injecting styles into a document without a
// <head> element.
var ErrNoHead = errors.New("document has no <head> element")

// Inject writes the baseline sheet and all mounted styles into the <head>
// of an HTML document. A <style> element with a matching data-style
// attribute is updated in place, otherwise a new element is appended.
func (mgr *Manager) Inject(doc *html.Node) error {
	head := findElement(atom.Head, doc)
	if head == nil {
		return ErrNoHead
	}
	css, err := mgr.Baseline()
	if err != nil {
		return err
	}
	setStyleElement(head, mgr.BaselineID(), css)
	for _, ref := range mgr.Mounted() {
		setStyleElement(head, ref.Class, ref.CSS)
	}
	return nil
}

// WriteStyles renders the baseline sheet and all mounted styles as a
// sequence of <style> elements.
func (mgr *Manager) WriteStyles(w io.Writer) error {
	css, err := mgr.Baseline()
	if err != nil {
		return err
	}
	if err := html.Render(w, styleElement(mgr.BaselineID(), css)); err != nil {
		return fmt.Errorf("writing baseline: %w", err)
	}
	for _, ref := range mgr.Mounted() {
		if err := html.Render(w, styleElement(ref.Class, ref.CSS)); err != nil {
			return fmt.Errorf("writing style %s: %w", ref.Class, err)
		}
	}
	return nil
}

func setStyleElement(head *html.Node, id, css string) {
	for ch := head.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.DataAtom != atom.Style || douceuradapter.StyleID(ch) != id {
			continue
		}
		var old strings.Builder
		for ch.FirstChild != nil {
			if ch.FirstChild.Type == html.TextNode {
				old.WriteString(ch.FirstChild.Data)
			}
			ch.RemoveChild(ch.FirstChild)
		}
		if dropped, err := droppedSelectors(old.String(), css); err != nil {
			tracer().Infof("previous contents of <style data-style=%q> do not parse: %v", id, err)
		} else if len(dropped) > 0 {
			tracer().Debugf("<style data-style=%q> drops rules for %v", id, dropped)
		}
		ch.AppendChild(&html.Node{Type: html.TextNode, Data: css})
		tracer().Debugf("replaced <style data-style=%q>", id)
		return
	}
	head.AppendChild(styleElement(id, css))
}

func styleElement(id, css string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     "style",
		DataAtom: atom.Style,
		Attr:     []html.Attribute{{Key: "data-style", Val: id}},
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: css})
	return n
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
