package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/adnsv/go-utils/fs"
	"github.com/adnsv/iatemplate/bundle"
	cli "github.com/jawher/mow.cli"
)

const (
	defaultName       = "ia_cph_template_01"
	defaultStylesheet = "ia_claus.css"
)

// options collected from the command line; empty strings and unset
// *Set flags mean "not given"
type options struct {
	descriptorFN string
	name         string
	stylesheet   string
	outdir       string
	headerHeight int
	footerHeight int
	headerSet    bool
	footerSet    bool
	check        bool
}

var errCheckFailed = errors.New("bundle check failed")

func main() {
	opts := options{}

	app := cli.App("iatemplate", "iA Writer template bundle generator")
	app.Version("v version", "iatemplate "+app_version())
	app.Spec = "[-c=<DESCRIPTOR-FILE>] [-n=<NAME>] [-s=<STYLESHEET>] [-o=<OUTDIR>] [--header-height=<N>] [--footer-height=<N>] [--check]"
	app.StringOptPtr(&opts.descriptorFN, "c descriptor", "", "load bundle settings from a yaml descriptor file")
	app.StringOptPtr(&opts.name, "n name", "", "bundle name (default "+defaultName+")")
	app.StringOptPtr(&opts.stylesheet, "s stylesheet", "", "stylesheet filename linked from every html file (default "+defaultStylesheet+")")
	app.StringOptPtr(&opts.outdir, "o outdir", ".", "directory that receives <NAME>.iatemplate")
	app.IntPtr(&opts.headerHeight, cli.IntOpt{
		Name:      "header-height",
		Value:     bundle.DefaultHeaderHeight,
		Desc:      "header height in points",
		SetByUser: &opts.headerSet,
	})
	app.IntPtr(&opts.footerHeight, cli.IntOpt{
		Name:      "footer-height",
		Value:     bundle.DefaultFooterHeight,
		Desc:      "footer height in points",
		SetByUser: &opts.footerSet,
	})
	app.BoolOptPtr(&opts.check, "check", false, "verify the generated bundle")

	app.Action = func() {
		if err := run(opts); err != nil {
			log.Fatal(err)
		}
		log.Printf("done\n")
	}

	app.Run(os.Args)
}

// descriptor merges defaults, the optional descriptor file and command line
// values, in increasing order of precedence.
func (o options) descriptor() (bundle.Descriptor, error) {
	d := bundle.NewDescriptor(defaultName, "", defaultStylesheet)
	if o.descriptorFN != "" {
		if !fs.FileExists(o.descriptorFN) {
			return d, fmt.Errorf("missing %s", o.descriptorFN)
		}
		var err error
		d, err = bundle.OpenDescriptor(o.descriptorFN)
		if err != nil {
			return d, err
		}
		if d.Name == "" {
			d.Name = defaultName
		}
		if d.Stylesheet == "" {
			d.Stylesheet = defaultStylesheet
		}
	}

	if o.name != "" {
		d.Name = o.name
	}
	if o.stylesheet != "" {
		d.Stylesheet = o.stylesheet
	}
	if o.headerSet {
		d.HeaderHeight = o.headerHeight
	}
	if o.footerSet {
		d.FooterHeight = o.footerHeight
	}

	outdir := o.outdir
	if outdir == "" {
		outdir = "."
	}
	outdir, err := filepath.Abs(outdir)
	if err != nil {
		return d, err
	}
	d.Dir = bundle.BundleDir(outdir, d.Name)
	return d, nil
}

func run(o options) error {
	d, err := o.descriptor()
	if err != nil {
		return err
	}

	log.Printf("generating %s\n", d.Dir)
	if err = bundle.Build(d); err != nil {
		return err
	}

	if o.check {
		issues, err := bundle.Verify(d.Dir)
		if err != nil {
			return err
		}
		for _, i := range issues {
			log.Printf("[problem] %s\n", i)
		}
		if len(issues) > 0 {
			return fmt.Errorf("%w: %d problem(s)", errCheckFailed, len(issues))
		}
		log.Printf("bundle check passed\n")
	}
	return nil
}
