package cli

import (
	"errors"
	"fmt"
	"io"
)

const echoFormat = "----> [%s]"

type lineReader interface {
	ReadLine(prompt string) (string, error)
}

type lineWriter interface {
	Write(text string)
}

// echoLines reads lines until end of input and writes each one back. The
// terminal is in raw mode, so rows end with "\r\n".
func echoLines(r lineReader, w lineWriter, prompt string) error {
	for {
		line, err := r.ReadLine(prompt)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		w.Write(fmt.Sprintf(echoFormat+"\r\n", line))
	}
}
