package modals

import (
	"errors"
	"io"
	"strings"

	huh "charm.land/huh/v2"
)

// accessibleOptions returns the visible choices as huh options. The hidden
// project option is never offered, matching the full-screen dialog.
func (s *LineWrappingState) accessibleOptions() []huh.Option[LineWrappingAction] {
	var opts []huh.Option[LineWrappingAction]
	for _, c := range s.choices {
		if c.Visible {
			opts = append(opts, huh.NewOption(c.Label, c.Action))
		}
	}
	return opts
}

// AccessibleForm builds a line-oriented form asking the same question as the
// modal. The selection is bound to value.
func (s *LineWrappingState) AccessibleForm(value *LineWrappingAction) *huh.Form {
	*value = s.SelectedAction()

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Line wrapping mismatch detected").
				Description(strings.Join(s.summaryLines(), "\n")),
			huh.NewSelect[LineWrappingAction]().
				Title("Select your preference for line wrapping below:").
				Description(s.HelpLink().Label+" ("+s.HelpLink().Topic+")").
				Options(s.accessibleOptions()...).
				Value(value),
		),
	).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithAccessible(true)
}

// RunAccessible asks the question on in/out instead of the full-screen modal
// and resolves the dialog the same way: Confirm with the chosen action, or
// Cancel when the user aborts. Reaching the end of in (ctrl+d, a closed pipe)
// before a valid answer is accepted counts as aborting.
func (s *LineWrappingState) RunAccessible(in io.Reader, out io.Writer) error {
	var value LineWrappingAction
	input := &promptReader{r: in}
	form := s.AccessibleForm(&value).WithInput(input).WithOutput(out)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			s.Cancel()
			return nil
		}
		return err
	}

	if input.exhausted {
		s.log.Info("Accessible prompt reached end of input")
		s.Cancel()
		return nil
	}

	if !s.SelectAction(value) {
		s.log.Warn("Accessible prompt returned an unavailable action", "action", value.String())
	}
	s.Confirm()
	return nil
}

// promptReader feeds a huh accessible prompt. huh reports neither EOF nor
// an abort from accessible fields, and an invalid last line followed by EOF
// is taken as the answer. promptReader completes an unterminated last line,
// then marks the input exhausted and answers with a placeholder "1" so the
// prompt returns; the caller discards that answer.
type promptReader struct {
	r         io.Reader
	pending   string
	eof       bool
	lastByte  byte
	exhausted bool
}

func (p *promptReader) Read(b []byte) (int, error) {
	if p.pending != "" {
		n := copy(b, p.pending)
		p.pending = p.pending[n:]
		return n, nil
	}
	if p.exhausted {
		return 0, io.EOF
	}

	if !p.eof {
		n, err := p.r.Read(b)
		if n > 0 {
			p.lastByte = b[n-1]
		}
		if err == io.EOF {
			p.eof = true
		} else if err != nil {
			return n, err
		}
		if n > 0 {
			return n, nil
		}
	}

	if p.lastByte != 0 && p.lastByte != '\n' {
		p.lastByte = '\n'
		p.pending = "\n"
	} else {
		p.exhausted = true
		p.pending = "1\n"
	}
	return p.Read(b)
}
