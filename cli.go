package evtap

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/jessevdk/go-flags"
	pdebug "github.com/lestrrat-go/pdebug"
	"github.com/pkg/errors"

	"github.com/evtap/evtap/config"
)

const version = "v0.1.0"

func (options *CLIOptions) parse(s []string) ([]string, error) {
	p := flags.NewParser(options, flags.PrintErrors)
	args, err := p.ParseArgs(s)
	if err != nil {
		os.Stderr.Write(options.help())
		return nil, errors.Wrap(err, "invalid command line options")
	}
	return args, nil
}

func (options CLIOptions) help() []byte {
	buf := bytes.Buffer{}

	fmt.Fprintf(&buf, `
Usage: evtap [options] [FILE]

Reads event records ("SEC.USEC TYPE CODE VALUE", one per line) from
FILE or stdin and prints each record's categorized form.

Options:
`)

	t := reflect.TypeOf(options)
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag

		var o string
		if s := tag.Get("short"); s != "" {
			o = fmt.Sprintf("-%s, --%s", tag.Get("short"), tag.Get("long"))
		} else {
			o = fmt.Sprintf("--%s", tag.Get("long"))
		}

		fmt.Fprintf(
			&buf,
			"  %-21s %s\n",
			o,
			tag.Get("description"),
		)
	}

	return buf.Bytes()
}

func (cli *CLI) stdin() io.Reader {
	if cli.Stdin != nil {
		return cli.Stdin
	}
	return os.Stdin
}

func (cli *CLI) stdout() io.Writer {
	if cli.Stdout != nil {
		return cli.Stdout
	}
	return os.Stdout
}

func (cli *CLI) stderr() io.Writer {
	if cli.Stderr != nil {
		return cli.Stderr
	}
	return os.Stderr
}

// Run parses args, builds the categorizer per the settings file and
// the options, and streams records from the input to the output.
func (cli *CLI) Run(args []string) (err error) {
	if pdebug.Enabled {
		g := pdebug.Marker("CLI.Run").BindError(&err)
		defer g.End()
	}

	var opts CLIOptions
	rest, err := opts.parse(args)
	if err != nil {
		return err
	}

	if opts.OptHelp {
		_, err := cli.stdout().Write(opts.help())
		return err
	}

	if opts.OptVersion {
		fmt.Fprintf(cli.stderr(), "evtap: %s\n", version)
		return nil
	}

	categorizer, err := cli.buildCategorizer(opts)
	if err != nil {
		return err
	}

	if opts.OptList != "" {
		return cli.list(opts.OptList)
	}

	in := cli.stdin()
	if len(rest) > 0 {
		f, err := os.Open(rest[0])
		if err != nil {
			return errors.Wrapf(err, "failed to open file %s", rest[0])
		}
		defer f.Close()
		in = f
	}

	out := cli.stdout()
	scanner := bufio.NewScanner(in)
	lineno := 0
	for scanner.Scan() {
		lineno++
		txt := strings.TrimSpace(scanner.Text())
		if txt == "" || strings.HasPrefix(txt, "#") {
			continue
		}

		ev, err := ParseRecord(txt)
		if err != nil {
			return errors.Wrapf(err, "line %d", lineno)
		}

		res, err := categorizer.Categorize(ev)
		if err != nil {
			return errors.Wrapf(err, "line %d", lineno)
		}
		fmt.Fprintln(out, res.String())
	}

	return errors.Wrap(scanner.Err(), "failed to read input")
}

func (cli *CLI) buildCategorizer(opts CLIOptions) (*Categorizer, error) {
	var cfg config.Config
	cfg.Init()

	rcfile := opts.OptRcfile
	if rcfile == "" {
		if file, err := config.LocateRcfile(config.DefaultConfigLocator); err == nil {
			rcfile = file
		}
	}
	if rcfile != "" {
		tracer.Printf("reading settings from %s", rcfile)
		if err := cfg.ReadFilename(rcfile); err != nil {
			return nil, err
		}
	}

	if opts.OptAllowUnknown {
		for _, cat := range config.Categories {
			cfg.AllowUnknown[cat] = true
		}
	}

	return NewCategorizerFromConfig(&cfg)
}

func (cli *CLI) list(name string) error {
	for _, cat := range categories {
		if cat.name != name {
			continue
		}

		w := cli.stdout()
		cat.table.Walk(func(code uint16, names []string) bool {
			fmt.Fprintf(w, "%d\t%s\n", code, strings.Join(names, " "))
			return true
		})
		return nil
	}
	return errors.Errorf("unknown category %q", name)
}

// ParseRecord parses a textual event record of the form
// "SEC.USEC TYPE CODE VALUE". USEC is the microsecond count, the way
// evtest prints it. TYPE, CODE and VALUE take any base strconv
// understands (28, 0x1c, ...).
func ParseRecord(s string) (*InputEvent, error) {
	fields := strings.Fields(s)
	if len(fields) != 4 {
		return nil, errors.Errorf("malformed event record %q: want 4 fields, got %d", s, len(fields))
	}

	ts := strings.SplitN(fields[0], ".", 2)
	if len(ts) != 2 {
		return nil, errors.Errorf("malformed timestamp %q: want SEC.USEC", fields[0])
	}
	sec, err := strconv.ParseUint(ts[0], 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "malformed seconds in %q", fields[0])
	}
	usec, err := strconv.ParseUint(ts[1], 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "malformed microseconds in %q", fields[0])
	}

	typ, err := strconv.ParseUint(fields[1], 0, 16)
	if err != nil {
		return nil, errors.Wrapf(err, "malformed type %q", fields[1])
	}
	code, err := strconv.ParseUint(fields[2], 0, 16)
	if err != nil {
		return nil, errors.Wrapf(err, "malformed code %q", fields[2])
	}
	value, err := strconv.ParseInt(fields[3], 0, 32)
	if err != nil {
		return nil, errors.Wrapf(err, "malformed value %q", fields[3])
	}

	return &InputEvent{
		Sec:   sec,
		Usec:  usec,
		Type:  uint16(typ),
		Code:  uint16(code),
		Value: int32(value),
	}, nil
}
