package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/zxhio/j4on/format"
	"github.com/zxhio/j4on/load"
	"github.com/zxhio/j4on/log"
	"github.com/zxhio/j4on/options"
	"github.com/zxhio/j4on/store"
	"github.com/zxhio/j4on/value"
	"github.com/zxhio/j4on/xerrors"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

const version = "0.3.0"

const (
	ModeFmt = "fmt" // reformat documents to canonical pretty-printed JSON
	ModeGet = "get" // look up a key and print the first matching value
)

var (
	mode               string
	key                string
	outdir             string
	configPath         string
	needOutputConfTmpl bool
)

func main() {
	var rootCmd = &cobra.Command{
		Use:     "j4onc [FILE]...",
		Version: genVersion(),
		Short:   "J4onc formats JSON documents and looks up keys in them",
		Run:     runCmd,
	}

	rootCmd.Flags().StringVarP(&mode, "mode", "m", "fmt", `Available mode: fmt and get.
- fmt: reformat each input file to canonical pretty-printed JSON.
- get: print the first value whose key matches --key, searched depth-first.
`)
	rootCmd.Flags().StringVarP(&key, "key", "k", "", "Key to look up in get mode")
	rootCmd.Flags().StringVarP(&outdir, "outdir", "o", "", "Output directory, default is stdout")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "./config.yaml", "Config file path")
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
	if err := loadConf(configPath, opts); err != nil {
		log.Errorf("load config(options) failed: %+v", err)
		os.Exit(-1)
	}
	if err := log.Init(opts.Log); err != nil {
		log.Errorf("init log failed: %+v", err)
		os.Exit(-1)
	}
	log.Debugf("loaded j4on config: %+v", spew.Sdump(opts))

	if len(args) == 0 {
		log.Errorf("no input files")
		os.Exit(-1)
	}

	switch mode {
	case ModeFmt:
		if err := runFmt(args, opts); err != nil {
			logError(ModeFmt, err)
			os.Exit(-1)
		}
	case ModeGet:
		if err := runGet(args, opts); err != nil {
			logError(ModeGet, err)
			os.Exit(-1)
		}
	default:
		log.Errorf("unknown mode: %s", mode)
		os.Exit(-1)
	}
}

// runFmt reformats each input file. Files are independent, so they are
// processed concurrently when writing to an output directory.
func runFmt(files []string, opts *options.Options) error {
	if outdir == "" {
		// Stdout keeps document order, so process sequentially.
		for _, file := range files {
			root, err := loadFile(file, opts)
			if err != nil {
				return err
			}
			out, err := store.Marshal(root, &store.MarshalOptions{Validate: opts.Output.Validate})
			if err != nil {
				return errors.WithMessagef(err, "failed to format: %s", file)
			}
			fmt.Println(string(out))
		}
		return nil
	}

	var eg errgroup.Group
	for _, file := range files {
		file := file
		eg.Go(func() error {
			root, err := loadFile(file, opts)
			if err != nil {
				return err
			}
			name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
			return store.Store(root, outdir, format.JSON,
				store.Name(name),
				store.Validate(opts.Output.Validate),
			)
		})
	}
	return eg.Wait()
}

func runGet(files []string, opts *options.Options) error {
	if key == "" {
		return errors.New("get mode requires --key")
	}
	for _, file := range files {
		root, err := loadFile(file, opts)
		if err != nil {
			return err
		}
		found := root.Get(key)
		if !found.IsValid() {
			log.Warnf("%12s: %s in %s", "not found", key, file)
			continue
		}
		out, err := store.Marshal(found, nil)
		if err != nil {
			return errors.WithMessagef(err, "failed to format value of key %q in %s", key, file)
		}
		fmt.Println(string(out))
	}
	return nil
}

func loadFile(file string, opts *options.Options) (value.Value, error) {
	var setters []load.Option
	if opts.Parse != nil && opts.Parse.MaxDepth > 0 {
		setters = append(setters, load.MaxDepth(opts.Parse.MaxDepth))
	}
	return load.LoadFile(file, setters...)
}

func logError(mode string, err error) {
	log.Debugf("%s failed: %+v", mode, err)
	log.Errorf("%s", xerrors.NewDesc(err).String())
}

func loadConf(path string, out interface{}) error {
	d, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// missing config keeps the defaults
			return nil
		}
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
	ver := version
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		ver += fmt.Sprintf(" (%s)", info.Main.Version)
	}
	return ver
}
