package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/bournejson/bourne"
	"github.com/bournejson/bourne/format"
	"github.com/bournejson/bourne/json"
	"github.com/bournejson/bourne/log"
	"github.com/bournejson/bourne/options"
)

var (
	configPath         string
	maxDepth           int
	backing            string
	needOutputConfTmpl bool
)

func main() {
	var rootCmd = &cobra.Command{
		Use:     "bournec [FILE]...",
		Version: genVersion(),
		Short:   "Bournec validates and inspects JSON files",
		Long:    `Bournec parses each FILE with the bourne JSON parser and reports the error code and byte index of the first failure.`,
		Run:     runCmd,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path")
	rootCmd.Flags().IntVarP(&maxDepth, "max-depth", "d", options.DefaultMaxDepth, "Maximum container nesting depth, <= 0 disables the guard")
	rootCmd.Flags().StringVarP(&backing, "backing", "b", "", `Object backing map: "hash" or "ordered"`)
	rootCmd.Flags().BoolVarP(&needOutputConfTmpl, "output-config-template", "t", false, "Output config template")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}
}

func runCmd(cmd *cobra.Command, args []string) {
	if needOutputConfTmpl {
		outputConfTmpl()
		return
	}

	opts := options.NewDefault()
	if configPath != "" {
		if err := loadConf(configPath, opts); err != nil {
			log.Errorf("load config(options) failed: %+v", err)
			os.Exit(-1)
		}
	}
	if cmd.Flags().Changed("max-depth") {
		opts.MaxDepth = maxDepth
	}
	if backing != "" {
		opts.Backing = options.Backing(backing)
	}
	if err := log.Init(opts.Log); err != nil {
		log.Errorf("init log failed: %+v", err)
		os.Exit(-1)
	}
	log.Debugf("loaded bourne config: %+v", spew.Sdump(opts))

	if err := checkFiles(args, opts); err != nil {
		os.Exit(-1)
	}
}

// checkFiles validates each file concurrently and logs one line per file.
func checkFiles(files []string, opts *options.Options) error {
	setters := []options.Option{
		options.ObjectBacking(opts.Backing),
		options.MaxDepth(opts.MaxDepth),
	}
	var eg errgroup.Group
	for _, file := range files {
		file := file
		if !format.IsInputFormat(format.GetFormat(file)) {
			log.Warnf("%s: extension is not %s, parsing anyway", file, format.JSONExt)
		}
		eg.Go(func() error {
			val, err := bourne.ParseFile(file, setters...)
			if err != nil {
				log.Errorf("%s: invalid: %s", file, err)
				return err
			}
			log.Infof("%s: ok: top-level %s%s", file, val.Kind(), describe(val))
			return nil
		})
	}
	return eg.Wait()
}

func describe(val *json.Value) string {
	switch val.Kind() {
	case json.KindArray:
		return fmt.Sprintf(" with %d elements", val.Len())
	case json.KindObject:
		return fmt.Sprintf(" with %d members", val.Len())
	default:
		return ""
	}
}

func loadConf(path string, out any) error {
	d, err := os.ReadFile(path)
	if err != nil {
		return errors.WithStack(err)
	}
	err = yaml.Unmarshal(d, out)
	if err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func outputConfTmpl() {
	defaultConf := options.NewDefault()
	d, err := yaml.Marshal(defaultConf)
	if err != nil {
		fmt.Printf("marshal failed: %+v\n", err)
		os.Exit(-1)
	}
	fmt.Println(string(d))
}

func genVersion() string {
	info := bourne.GetVersionInfo()
	ver := info.Version
	if info.Revision != "" {
		ver += fmt.Sprintf(" (%s, %s)", info.Revision, info.Time)
	}
	return ver
}
