// Command nts converts n-gram tree files between the binary and textual
// NTS forms, inspects them, and runs next-word prediction against them.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ngramtext/nts"
	"github.com/ngramtext/nts/ngram"
)

var (
	flagIn       = flag.String("i", "", "input tree file (required unless -selftest)")
	flagOut      = flag.String("o", "", "output file")
	flagText     = flag.Bool("t", false, "write the textual form instead of binary")
	flagNoOut    = flag.Bool("no_out", false, "no output")
	flagReport   = flag.Bool("r", false, "report node count and encoded size")
	flagPredict  = flag.String("predict", "", "space-separated n-gram to predict the next word for")
	flagSelftest = flag.Int("selftest", 0, "round-trip this many random trees and exit")
	flagVerbose  = flag.Bool("v", false, "verbose logging")
	flagVersion  = flag.Bool("version", false, "report executable version")
)

const version = "1.0.0"

func quitF(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		panic(err)
	}
	os.Exit(1)
}

func assertNoError(err error) {
	if err != nil {
		quitF("%v\n", err)
	}
}

func main() {
	flag.Parse()

	log := nts.Logger()
	if *flagVerbose {
		log = log.Level(zerolog.DebugLevel)
		nts.SetLogger(log)
	}

	if *flagVersion {
		fmt.Println("nts v" + version)
		os.Exit(0)
	}

	if *flagSelftest > 0 {
		selftest(log, *flagSelftest)
		os.Exit(0)
	}

	if *flagIn == "" {
		quitF("no input file specified\n")
	}

	root, err := nts.Load(*flagIn)
	assertNoError(err)

	if *flagPredict != "" {
		gram := strings.Fields(*flagPredict)
		for _, word := range root.PredictNextWord(gram) {
			fmt.Println(word)
		}
		return
	}

	if *flagOut != "" && *flagNoOut {
		quitF("options -no_out and -o are mutually exclusive\n")
	}

	if *flagOut == "" { // construct a file name from the input name
		base := strings.TrimSuffix(strings.TrimSuffix(*flagIn, nts.ExtBinary), nts.ExtText)
		if *flagText {
			*flagOut = base + nts.ExtText
		} else {
			*flagOut = base + nts.ExtBinary
		}
	}

	if !*flagNoOut {
		if *flagText {
			assertNoError(nts.SaveText(*flagOut, root))
		} else {
			assertNoError(nts.SaveBinary(*flagOut, root))
		}
	}

	if *flagReport {
		in, err := os.Stat(*flagIn)
		assertNoError(err)
		report := fmt.Sprintf("%d nodes, %dB in", root.BranchSize(), in.Size())
		if !*flagNoOut {
			out, err := os.Stat(*flagOut)
			assertNoError(err)
			report += fmt.Sprintf(", %dB out", out.Size())
		}
		fmt.Println(report)
	}
}

// selftest mirrors the round-trip property the tests pin: random trees
// must survive both forms unchanged.
func selftest(log zerolog.Logger, runs int) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i := 0; i < runs; i++ {
		tree := ngram.RandomTree(rng, 10, 6, 10000)

		data, err := encodeDecodeBoth(tree)
		if err != nil {
			quitF("selftest run %d: %v\n", i, err)
		}
		log.Info().Int("run", i).Int("nodes", tree.BranchSize()).Int("binaryBytes", data).Msg("round trip ok")
	}
	fmt.Printf("%d round trips ok\n", runs)
}

func encodeDecodeBoth(tree *ngram.Node) (binarySize int, err error) {
	dir, err := os.MkdirTemp("", "nts-selftest")
	if err != nil {
		return 0, err
	}
	defer os.RemoveAll(dir)

	binPath := dir + "/tree" + nts.ExtBinary
	textPath := dir + "/tree" + nts.ExtText

	if err = nts.Save(binPath, tree); err != nil {
		return 0, err
	}
	if err = nts.Save(textPath, tree); err != nil {
		return 0, err
	}

	fromBin, err := nts.Load(binPath)
	if err != nil {
		return 0, err
	}
	fromText, err := nts.Load(textPath)
	if err != nil {
		return 0, err
	}

	if !tree.DeepEquals(fromBin) {
		return 0, fmt.Errorf("binary round trip changed the tree")
	}
	if !tree.DeepEquals(fromText) {
		return 0, fmt.Errorf("textual round trip changed the tree")
	}

	info, err := os.Stat(binPath)
	if err != nil {
		return 0, err
	}
	return int(info.Size()), nil
}
