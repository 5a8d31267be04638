package main

import (
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/graphite/font"
	"github.com/npillmayer/graphite/utf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'graphite.cli'
func tracer() tracing.Trace {
	return tracing.Select("graphite.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":        "go",
		"trace.graphite.cli":     "Info",
		"trace.graphite.utf":     "Error",
		"trace.graphite.font":    "Info",
		"trace.graphite.segment": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "Font to load")
	encname := flag.String("enc", "utf8", "Encoding form [utf8|utf16|utf32]")
	ordername := flag.String("order", "le", "Byte order of code units [le|be]")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError) // will set the correct level later
	pterm.Info.Println("Welcome to Graphite text CLI")
	//
	intp := &Intp{enc: utf.UTF8, order: binary.LittleEndian, limit: limitBuffer, max: 100, end: -1}
	if err := intp.setEnc(*encname); err != nil {
		tracer().Errorf("%v", err)
		os.Exit(2)
	}
	if err := intp.setOrder(*ordername); err != nil {
		tracer().Errorf("%v", err)
		os.Exit(2)
	}
	//
	// set up REPL
	repl, err := readline.New("gr > ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl
	//
	// load font to use, if any
	if *fontname != "" {
		if err := intp.loadFont(*fontname); err != nil {
			tracer().Errorf("%v", err)
			os.Exit(4)
		}
	}
	//
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

type limitKind int

const (
	limitNone limitKind = iota
	limitCount
	limitBuffer
	limitBoth
)

var limitNames = []string{"none", "count", "buffer", "both"}

// Intp is our interpreter object
type Intp struct {
	repl  *readline.Instance
	face  *font.SFNTFace
	enc   utf.EncForm
	order binary.ByteOrder
	limit limitKind
	max   int // character count for count limits
	end   int // buffer end for buffer limits; -1 means end of input
}

func (intp *Intp) String() string {
	end := "len"
	if intp.end >= 0 {
		end = strconv.Itoa(intp.end)
	}
	fontname := "-"
	if intp.face != nil {
		fontname = intp.face.Fontname
	}
	return fmt.Sprintf("( %s %s limit=%s max=%d end=%s font=%s )",
		intp.enc, orderName(intp.order), limitNames[intp.limit], intp.max, end, fontname)
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := intp.parseCommand(line)
		if err != nil {
			tracer().Errorf("%v", err)
			continue
		}
		err, quit := intp.execute(cmd)
		if err != nil {
			tracer().Errorf("%v", err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

type Op struct {
	code int
	arg  string
}

type Command struct {
	ops []Op
}

const (
	QUIT int = iota
	HELP
	ENC
	ORDER
	LIMIT
	MAX
	END
	FONT
	// op-codes below take the rest of the line as argument
	HEX
	TEXT
	SEG
)

var opMap = map[string]int{
	"quit":  QUIT,
	"help":  HELP,
	"enc":   ENC,
	"order": ORDER,
	"limit": LIMIT,
	"max":   MAX,
	"end":   END,
	"font":  FONT,
	"hex":   HEX,
	"text":  TEXT,
	"seg":   SEG,
}

// parseCommand splits a line into ops like "enc:utf16 limit:both max:3".
// The ops "hex", "text" and "seg" swallow the rest of the line.
func (intp *Intp) parseCommand(line string) (*Command, error) {
	cmd := &Command{}
	for line != "" {
		step, rest, _ := strings.Cut(line, " ")
		name, arg, _ := strings.Cut(step, ":")
		code, ok := opMap[strings.ToLower(name)]
		if !ok {
			code = HELP
		}
		if code >= HEX {
			_, arg, _ = strings.Cut(line, ":")
			rest = ""
		}
		tracer().Debugf("parsed op %s: %q", name, arg)
		cmd.ops = append(cmd.ops, Op{code: code, arg: arg})
		line = strings.TrimSpace(rest)
	}
	return cmd, nil
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:  quitOp,
	HELP:  helpOp,
	ENC:   encOp,
	ORDER: orderOp,
	LIMIT: limitOp,
	MAX:   maxOp,
	END:   endOp,
	FONT:  fontOp,
	HEX:   hexOp,
	TEXT:  textOp,
	SEG:   segOp,
}

func (intp *Intp) execute(cmd *Command) (err error, stop bool) {
	tracer().Debugf("cmd = %v", cmd.ops)
	for _, c := range cmd.ops {
		f, ok := commandFn[c.code]
		if !ok {
			pterm.Error.Printf("unknown command code: %d\n", c.code)
			return nil, false
		}
		err, stop = f(intp, &c)
		if err != nil {
			pterm.Error.Println(err)
			return
		}
		if stop {
			return
		}
	}
	return
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

// --- Settings ---------------------------------------------------------

var errNoArg = errors.New("argument missing")

func encOp(intp *Intp, op *Op) (error, bool) {
	return intp.setEnc(op.arg), false
}

func orderOp(intp *Intp, op *Op) (error, bool) {
	return intp.setOrder(op.arg), false
}

func limitOp(intp *Intp, op *Op) (error, bool) {
	for i, name := range limitNames {
		if strings.EqualFold(name, op.arg) {
			intp.limit = limitKind(i)
			return nil, false
		}
	}
	return fmt.Errorf("unknown limit %q, expected one of %v", op.arg, limitNames), false
}

func maxOp(intp *Intp, op *Op) (error, bool) {
	n, err := intArg(op)
	if err == nil {
		intp.max = n
	}
	return err, false
}

func endOp(intp *Intp, op *Op) (error, bool) {
	if op.arg == "len" {
		intp.end = -1
		return nil, false
	}
	n, err := intArg(op)
	if err == nil {
		intp.end = n
	}
	return err, false
}

func fontOp(intp *Intp, op *Op) (error, bool) {
	if op.arg == "" {
		return errNoArg, false
	}
	return intp.loadFont(op.arg), false
}

func (intp *Intp) setEnc(name string) error {
	enc, err := utf.ParseEncForm(name)
	if err == nil {
		intp.enc = enc
	}
	return err
}

func (intp *Intp) setOrder(name string) error {
	switch strings.ToLower(name) {
	case "le", "little":
		intp.order = binary.LittleEndian
	case "be", "big":
		intp.order = binary.BigEndian
	default:
		return fmt.Errorf("unknown byte order %q", name)
	}
	return nil
}

func orderName(order binary.ByteOrder) string {
	if order == binary.BigEndian {
		return "BE"
	}
	return "LE"
}

func (intp *Intp) loadFont(fontfile string) (err error) {
	face, err := font.LoadOpenTypeFont(fontfile)
	if err != nil {
		return err
	}
	intp.face = face
	tracer().Infof("loaded SFNT font = %s", face.Fontname)
	pterm.Printf("font tables: %v\n", face.TableTags())
	return nil
}

// makeLimit creates the termination policy for a buffer of size n.
func (intp *Intp) makeLimit(n int) utf.Limit {
	end := intp.end
	if end < 0 {
		end = n
	}
	switch intp.limit {
	case limitCount:
		return utf.CountLimit(intp.max)
	case limitBuffer:
		return utf.EndLimit(end)
	case limitBoth:
		return utf.EndAndCountLimit(end, intp.max)
	}
	return utf.NoLimit{}
}

func intArg(op *Op) (int, error) {
	if op.arg == "" {
		return 0, errNoArg
	}
	n, err := strconv.Atoi(op.arg)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("expected non-negative number, have %q", op.arg)
	}
	return n, nil
}
