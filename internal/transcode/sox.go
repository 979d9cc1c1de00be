// Package transcode wraps the external audio transcoder. The transcoder is
// an opaque collaborator: given an input file and an output path it either
// produces a GSM-encoded file or fails.
package transcode

import (
	"bytes"
	"fmt"
	"os/exec"
)

// Transcoder converts an uploaded audio file into the stored greeting
// format, writing the result to dst.
type Transcoder interface {
	Transcode(src, dst string) error
}

// Sox shells out to the sox binary to produce GSM audio at an 8kHz sample
// rate. The invocation has no timeout: a hung sox process hangs the request
// that spawned it.
type Sox struct {
	Bin string // binary name or path; "sox" when empty
}

func (s Sox) Transcode(src, dst string) error {
	bin := s.Bin
	if bin == "" {
		bin = "sox"
	}
	out, err := exec.Command(bin, src, "-t", "gsm", "-r", "8k", dst).CombinedOutput()
	if err != nil {
		return fmt.Errorf("sox %s -> %s: %w: %s", src, dst, err, bytes.TrimSpace(out))
	}
	return nil
}
