package provider

import (
	"bufio"
	"io"
	"strings"
)

// sseFrame is one `event: <name>\ndata: <json>\n\n` frame. Either field
// may be empty; frames without a data line are skipped by the reader.
type sseFrame struct {
	event string
	data  string
}

// sseScanner reads raw Server-Sent-Events lines off a response body and
// assembles them into frames, exactly as described in spec.md §4.3: lines
// of the form "event: <name>" and "data: <json>", separated by blank
// lines. A frame may carry multiple "data:" lines; they are joined with
// "\n" per the SSE spec.
type sseScanner struct {
	r       *bufio.Reader
	curName string
	curData []string
}

func newSSEScanner(r io.Reader) *sseScanner {
	return &sseScanner{r: bufio.NewReaderSize(r, 64*1024)}
}

// next returns the next complete frame, or io.EOF when the body closes
// without further frames. Malformed lines (no colon) are ignored, which
// matches typical SSE client tolerance and keeps a single bad line from
// aborting the whole stream.
func (s *sseScanner) next() (sseFrame, error) {
	for {
		line, err := s.r.ReadString('\n')
		if len(line) == 0 && err != nil {
			return sseFrame{}, err
		}
		line = strings.TrimRight(line, "\r\n")

		if line == "" {
			// Blank line: dispatch whatever we accumulated, if anything.
			if s.curName != "" || len(s.curData) > 0 {
				frame := sseFrame{event: s.curName, data: strings.Join(s.curData, "\n")}
				s.curName = ""
				s.curData = nil
				return frame, nil
			}
			if err != nil {
				return sseFrame{}, err
			}
			continue
		}

		if strings.HasPrefix(line, ":") {
			// Comment/heartbeat line.
			if err != nil {
				return sseFrame{}, err
			}
			continue
		}

		field, value := splitSSEField(line)
		switch field {
		case "event":
			s.curName = value
		case "data":
			s.curData = append(s.curData, value)
		}

		if err != nil {
			if s.curName != "" || len(s.curData) > 0 {
				frame := sseFrame{event: s.curName, data: strings.Join(s.curData, "\n")}
				s.curName = ""
				s.curData = nil
				return frame, nil
			}
			return sseFrame{}, err
		}
	}
}

func splitSSEField(line string) (field, value string) {
	idx := strings.IndexByte(line, ':')
	if idx < 0 {
		return line, ""
	}
	field = line[:idx]
	value = line[idx+1:]
	value = strings.TrimPrefix(value, " ")
	return field, value
}
