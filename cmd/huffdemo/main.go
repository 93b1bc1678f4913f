// Command huffdemo encodes a message with a Huffman codec, prints the
// bit-string, and decodes it back.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/op/go-logging"

	"github.com/strcodec/huffman"
)

const progName = "huffdemo"

var log = logging.MustGetLogger(progName)

var (
	flagMessage  = flag.String("m", "Levon", "message to encode")
	flagAlphabet = flag.Int("alphabet", huffman.DefaultAlphabetSize, "alphabet size, 1 .. 256")
	flagStrict   = flag.Bool("strict", false, "reject empty input")
	flagDebug    = flag.Bool("debug", false, "log the tree and code table")
)

var leveledLogBackend logging.LeveledBackend

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{level:8s} %{module:-10s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

func exitError(err error) {
	log.Errorf("%v", err)
	os.Exit(1)
}

func main() {
	startLogging()
	flag.Parse()

	if *flagDebug {
		leveledLogBackend.SetLevel(logging.DEBUG, "")
	}

	codec, err := huffman.NewCodec(huffman.Options{
		AlphabetSize: *flagAlphabet,
		RejectEmpty:  *flagStrict,
	})
	if err != nil {
		exitError(err)
	}

	encoded, err := codec.Encode(*flagMessage)
	if err != nil {
		exitError(err)
	}
	fmt.Println("Encoded:")
	fmt.Println(encoded)

	if log.IsEnabledFor(logging.DEBUG) {
		var sb strings.Builder
		_, _ = codec.Tree().Dump(&sb)
		_, _ = codec.CodeTable().Dump(&sb)
		log.Debugf("%s\n%s", codec.CodeTable(), sb.String())
	}

	packed, err := huffman.PackBits(encoded)
	if err != nil {
		exitError(err)
	}
	if n := len(*flagMessage); n != 0 {
		ratioPct := len(packed) * 100 / n
		log.Infof("%dB -> %dB (%d bits) compression ratio %d.%02d", n, len(packed), len(encoded), ratioPct/100, ratioPct%100)
	}

	decoded, err := codec.Decode(encoded)
	if err != nil {
		exitError(err)
	}
	fmt.Println("Decoded:")
	fmt.Println(decoded)
}
