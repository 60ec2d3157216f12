package log

import (
	// Stdlib
	"bytes"
	"fmt"
	"os"
	"sync/atomic"

	// Vendor
	"github.com/fatih/color"
)

type (
	Level  uint32
	Logger bool
)

const (
	Trace Level = iota
	Debug
	Verbose
	Info
	Off
)

var levelNames = []string{
	Trace:   "trace",
	Debug:   "debug",
	Verbose: "verbose",
	Info:    "info",
	Off:     "off",
}

func LevelStrings() []string {
	names := make([]string, len(levelNames))
	copy(names, levelNames)
	return names
}

func MustLevelToString(level Level) string {
	if int(level) >= len(levelNames) {
		panic(fmt.Sprintf("unknown logging level: %v", uint32(level)))
	}
	return levelNames[level]
}

func MustStringToLevel(levelString string) Level {
	for level, name := range levelNames {
		if name == levelString {
			return Level(level)
		}
	}
	panic(fmt.Sprintf("unknown logging level: %v", levelString))
}

var v = Level(Info)

func SetV(level Level) {
	atomic.StoreUint32((*uint32)(&v), uint32(level))
}

func V(level Level) Logger {
	if atomic.LoadUint32((*uint32)(&v)) > uint32(level) {
		return Logger(false)
	}
	return Logger(true)
}

var (
	runColor      = color.New(color.FgCyan)
	okColor       = color.New(color.FgGreen)
	failColor     = color.New(color.FgRed)
	skipColor     = color.New(color.Faint)
	rollbackColor = color.New(color.FgYellow)
)

func (l Logger) log(v ...interface{}) {
	if l {
		fmt.Fprint(os.Stderr, v...)
	}
}

func (l Logger) logf(format string, v ...interface{}) {
	if l {
		fmt.Fprintf(os.Stderr, format, v...)
	}
}

func (l Logger) logln(v ...interface{}) {
	if l {
		fmt.Fprintln(os.Stderr, v...)
	}
}

func (l Logger) verb(c *color.Color, verb, msg string) {
	if l {
		fmt.Fprintf(os.Stderr, "%v %v\n", c.Sprintf("%-10v", verb), msg)
	}
}

func (l Logger) Run(msg string) {
	l.verb(runColor, "[RUN]", msg)
}

func (l Logger) Skip(msg string) {
	l.verb(skipColor, "[SKIP]", msg)
}

func (l Logger) Ok(msg string) {
	l.verb(okColor, "[OK]", msg)
}

func (l Logger) Fail(msg string) {
	l.verb(failColor, "[FAIL]", msg)
}

func (l Logger) Rollback(msg string) {
	l.verb(rollbackColor, "[ROLLBACK]", msg)
}

func (l Logger) Log(msg string) {
	l.logln(msg)
}

// NewLine prints the message aligned with the verb-prefixed lines
// so that continuation lines read as a block.
func (l Logger) NewLine(msg string) {
	l.logf("%11v%v\n", "", msg)
}

func (l Logger) Stderr(stderr *bytes.Buffer) {
	if stderr == nil || stderr.Len() == 0 {
		return
	}
	l.logln("<<<<< stderr")
	l.log(stderr.String())
	l.logln(">>>>> stderr")
}

func (l Logger) Print(v ...interface{}) {
	l.log(v...)
}

func (l Logger) Printf(format string, v ...interface{}) {
	l.logf(format, v...)
}

func (l Logger) Println(v ...interface{}) {
	l.logln(v...)
}

func (l Logger) Fatal(v ...interface{}) {
	fmt.Fprint(os.Stderr, v...)
	os.Exit(1)
}

func (l Logger) Fatalf(format string, v ...interface{}) {
	fmt.Fprintf(os.Stderr, format, v...)
	os.Exit(1)
}

func (l Logger) Fatalln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
	os.Exit(1)
}

func Run(msg string) {
	V(Info).Run(msg)
}

func Skip(msg string) {
	V(Info).Skip(msg)
}

func Ok(msg string) {
	V(Info).Ok(msg)
}

func Fail(msg string) {
	V(Info).Fail(msg)
}

func Rollback(msg string) {
	V(Info).Rollback(msg)
}

func Print(v ...interface{}) {
	V(Info).Print(v...)
}

func Printf(format string, v ...interface{}) {
	V(Info).Printf(format, v...)
}

func Println(v ...interface{}) {
	V(Info).Println(v...)
}

func Fatal(v ...interface{}) {
	V(Info).Fatal(v...)
}

func Fatalf(format string, v ...interface{}) {
	V(Info).Fatalf(format, v...)
}

func Fatalln(v ...interface{}) {
	V(Info).Fatalln(v...)
}
