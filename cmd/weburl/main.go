package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/oesand/weburl"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const Help = `weburl -- Parse, resolve and edit URLs the way browsers do

Usage: weburl [OPTIONS...] [URL...]

URLs are read from standard input, one per line, when none are given.

Options:
  -b, --base URL          Resolve every input against URL.
  -s, --set NAME=VALUE    Change a component after parsing. May be repeated.
                          NAME is one of href, protocol, username, password,
                          host, hostname, port, pathname, search, hash.
  -j, --json              Print every component as a JSON object per line.
  -v, --verbose           Report validation errors on stderr.
      --no-fast-path      Parse everything with the general state machine.

  -h, --help              Show this help message and exit.
`

type Command struct {
	InStream  io.Reader
	OutStream io.Writer
	ErrStream io.Writer
}

var defaultCommand = &Command{
	InStream:  os.Stdin,
	OutStream: os.Stdout,
	ErrStream: os.Stderr,
}

type setter func(u *weburl.URL, value string) bool

var setters = map[string]setter{
	"href":     func(u *weburl.URL, v string) bool { return u.SetHref(v) == nil },
	"protocol": (*weburl.URL).SetProtocol,
	"username": (*weburl.URL).SetUsername,
	"password": (*weburl.URL).SetPassword,
	"host":     (*weburl.URL).SetHost,
	"hostname": (*weburl.URL).SetHostname,
	"port":     (*weburl.URL).SetPort,
	"pathname": (*weburl.URL).SetPathname,
	"search":   func(u *weburl.URL, v string) bool { u.SetSearch(v); return true },
	"hash":     func(u *weburl.URL, v string) bool { u.SetHash(v); return true },
}

type edit struct {
	name  string
	value string
	apply setter
}

// record is the JSON shape of one parsed URL.
type record struct {
	Href              string            `json:"href"`
	Origin            string            `json:"origin"`
	Protocol          string            `json:"protocol"`
	Username          string            `json:"username"`
	Password          string            `json:"password"`
	Host              string            `json:"host"`
	Hostname          string            `json:"hostname"`
	Port              string            `json:"port"`
	Pathname          string            `json:"pathname"`
	Search            string            `json:"search"`
	Hash              string            `json:"hash"`
	PublicSuffix      string            `json:"public_suffix,omitempty"`
	RegistrableDomain string            `json:"registrable_domain,omitempty"`
	Components        weburl.Components `json:"components"`
}

func newRecord(u *weburl.URL) record {
	return record{
		Href:              u.Href(),
		Origin:            u.Origin(),
		Protocol:          u.Protocol(),
		Username:          u.Username(),
		Password:          u.Password(),
		Host:              u.Host(),
		Hostname:          u.Hostname(),
		Port:              u.Port(),
		Pathname:          u.Pathname(),
		Search:            u.Search(),
		Hash:              u.Hash(),
		PublicSuffix:      u.PublicSuffix(),
		RegistrableDomain: u.RegistrableDomain(),
		Components:        u.Components(),
	}
}

func (c Command) Run(args []string) int {
	flags := pflag.NewFlagSet("weburl", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)

	base := flags.StringP("base", "b", "", "Resolve every input against this URL")
	sets := flags.StringArrayP("set", "s", nil, "Change a component after parsing")
	asJson := flags.BoolP("json", "j", false, "Print components as JSON")
	verbose := flags.BoolP("verbose", "v", false, "Report validation errors")
	noFastPath := flags.Bool("no-fast-path", false, "Always use the general state machine")
	help := flags.BoolP("help", "h", false, "Show this message and exit")

	if err := flags.Parse(args[1:]); err != nil {
		fmt.Fprintln(c.ErrStream, err)
		fmt.Fprintf(c.ErrStream, "\nPlease see `%s -h` for more information.\n", args[0])
		return 2
	}

	if *help {
		fmt.Fprint(c.OutStream, Help)
		return 0
	}

	edits, err := parseEdits(*sets)
	if err != nil {
		fmt.Fprintf(c.ErrStream, "error: %s\n", err)
		return 2
	}

	var opts []weburl.Option
	if *verbose {
		log := c.buildLogger()
		defer log.Sync()
		opts = append(opts, weburl.WithLogger(log))
	}
	if *noFastPath {
		opts = append(opts, weburl.WithoutFastPath())
	}
	parser := weburl.NewParser(opts...)

	var baseURL *weburl.URL
	if *base != "" {
		if baseURL, err = parser.Parse(*base); err != nil {
			fmt.Fprintf(c.ErrStream, "error: invalid base %q: %s\n", *base, err)
			return 2
		}
	}

	inputs := flags.Args()
	if len(inputs) == 0 {
		scanner := bufio.NewScanner(c.InStream)
		for scanner.Scan() {
			if line := scanner.Text(); strings.TrimSpace(line) != "" {
				inputs = append(inputs, line)
			}
		}
		if err := scanner.Err(); err != nil {
			fmt.Fprintf(c.ErrStream, "error: failed to read input: %s\n", err)
			return 1
		}
	}

	code := 0
	for _, input := range inputs {
		u, err := c.process(parser, baseURL, input, edits)
		if err != nil {
			fmt.Fprintf(c.ErrStream, "error: %q: %s\n", input, err)
			code = 1
			continue
		}
		if err := c.print(u, *asJson); err != nil {
			fmt.Fprintf(c.ErrStream, "error: failed to write output: %s\n", err)
			return 1
		}
	}
	return code
}

func (c Command) process(parser *weburl.Parser, base *weburl.URL, input string, edits []edit) (*weburl.URL, error) {
	u, err := parser.Resolve(input, base)
	if err != nil {
		return nil, err
	}
	for _, e := range edits {
		if !e.apply(u, e.value) {
			return nil, fmt.Errorf("can not set %s to %q", e.name, e.value)
		}
	}
	return u, nil
}

func (c Command) print(u *weburl.URL, asJson bool) error {
	if !asJson {
		_, err := fmt.Fprintln(c.OutStream, u.Href())
		return err
	}
	data, err := json.Marshal(newRecord(u))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.OutStream, "%s\n", data)
	return err
}

func parseEdits(specs []string) ([]edit, error) {
	edits := make([]edit, 0, len(specs))
	for _, s := range specs {
		name, value, ok := strings.Cut(s, "=")
		if !ok {
			return nil, fmt.Errorf("--set needs NAME=VALUE, got %q", s)
		}
		apply, ok := setters[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("unknown component %q", name)
		}
		edits = append(edits, edit{name: name, value: value, apply: apply})
	}
	return edits, nil
}

// buildLogger writes debug entries without time, caller or stacktrace to
// the error stream.
func (c Command) buildLogger() *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	enc.CallerKey = ""
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(c.ErrStream), zap.DebugLevel)
	return zap.New(core)
}

func main() {
	os.Exit(defaultCommand.Run(os.Args))
}
