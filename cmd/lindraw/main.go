// Command lindraw renders L-systems described in the text configuration format.
//
//	lindraw -config koch.lsys -level 4 -o koch.svg
//	lindraw -config koch.lsys -level 2 -print
//	lindraw -config plant.lsys -view
//	lindraw -jobs jobs.yml
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/aabizri/lindraw"
	"github.com/aabizri/lindraw/interchange/job"
	"github.com/aabizri/lindraw/render/term"
)

// maxViewLevel bounds the levels reachable from the interactive viewer
const maxViewLevel = 12

var (
	configFlag  = flag.String("config", "", "text configuration to draw, - for stdin")
	levelFlag   = flag.Uint("level", 0, "generation level")
	outputFlag  = flag.String("o", "", "output file, .svg or .png")
	sizeFlag    = flag.Int("size", job.DefaultSize, "side of the output image in pixels")
	viewFlag    = flag.Bool("view", false, "show the L-system in the terminal")
	printFlag   = flag.Bool("print", false, "print the generated sequence")
	jobsFlag    = flag.String("jobs", "", "YAML stream of render jobs, - for stdin")
	workersFlag = flag.Int("workers", runtime.NumCPU(), "jobs rendered concurrently")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("lindraw: ")
	flag.Parse()

	if *jobsFlag != "" {
		r, dir, err := open(*jobsFlag)
		if err != nil {
			log.Fatalf("Error while opening jobs: %v\n", err)
		}
		failed, err := listen(os.Stdout, r, os.Stderr, dir, *workersFlag)
		r.Close()
		if err != nil {
			log.Fatalf("Error while decoding jobs: %v\n", err)
		}
		if failed > 0 {
			os.Exit(1)
		}
		return
	}

	if *configFlag == "" {
		flag.Usage()
		os.Exit(2)
	}

	r, _, err := open(*configFlag)
	if err != nil {
		log.Fatalf("Error while opening configuration: %v\n", err)
	}
	b := lindraw.NewBuilder()
	err = b.Configure(r)
	r.Close()
	if err != nil {
		log.Fatalf("Error while reading configuration: %v\n", err)
	}
	ls := b.Build()

	switch {
	case *printFlag:
		_, err = fmt.Fprintln(os.Stdout, ls.Generate(*levelFlag))
	case *viewFlag:
		err = view(ls, *levelFlag)
	case *outputFlag != "":
		var lines int
		lines, err = renderFile(*outputFlag, ls, *levelFlag, *sizeFlag)
		if err == nil {
			log.Printf("wrote %s, %d lines", *outputFlag, lines)
		}
	default:
		err = errors.New("nothing to do, use -o, -view or -print")
	}
	if err != nil {
		log.Fatalf("%v\n", err)
	}
}

// open returns the reader for path and the directory relative paths inside
// it refer to. "-" is stdin, relative to the working directory; closing it
// leaves stdin open.
func open(path string) (io.ReadCloser, string, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), ".", nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	return f, filepath.Dir(path), nil
}

func view(ls lindraw.LSystem, level uint) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "opening terminal")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "initialising terminal")
	}
	defer screen.Fini()

	return term.NewViewer(screen, ls, level, maxViewLevel).Run()
}

// listen renders every job of the stream r, writing the produced files to w
// and a report per job to ew. It returns the number of failed jobs; an error
// is only returned when the stream itself cannot be decoded.
func listen(w io.Writer, r io.Reader, ew io.Writer, dir string, workers int) (int, error) {
	if workers < 1 {
		workers = 1
	}
	in, out := buildPipeline(workers)

	failed := 0
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for o := range out {
			if o.err != nil {
				failed++
				fmt.Fprintf(ew, "Job %d (%s) failed: %v\n", o.seq, o.job.Config, o.err)
				continue
			}
			fmt.Fprintf(ew, "Job %d (%s) level %d: %d lines\n", o.seq, o.job.Config, o.job.Level, o.lines)
			fmt.Fprintln(w, o.job.OutputPath())
		}
	}()

	dec := job.NewDecoder(r, dir)
	var decodeErr error
	for {
		j, err := dec.Decode()
		if err == io.EOF {
			break
		} else if err != nil {
			decodeErr = err
			break
		}
		in <- j
	}
	close(in)

	<-closed
	return failed, decodeErr
}
