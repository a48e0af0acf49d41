package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/omelentyev/runtime/collections"
	"github.com/omelentyev/runtime/collections/compare"
)

var cli struct {
	In         string `name:"input-file" short:"i" help:"input file, \"-\" for standard input" default:"-"`
	Out        string `name:"output-file" short:"o" help:"output file, \"-\" for standard output" default:"-"`
	Locale     string `name:"locale" short:"l" help:"BCP 47 or POSIX locale name used to collate lines, e.g. sv-SE or de_DE.UTF-8. if not set, the locale of the environment is used"`
	Invariant  bool   `name:"invariant" help:"collate with the locale-independent root collation"`
	Config     string `name:"config" short:"c" help:"YAML file holding a persisted comparer, overrides --locale and --invariant" type:"path"`
	DumpConfig bool   `name:"dump-config" help:"write the comparer configuration as YAML instead of sorting"`
	Reverse    bool   `name:"reverse" short:"r" help:"in reverse order. i.e. the greater comes earlier"`
	Unique     bool   `name:"unique" short:"u" help:"output only the first of lines that collate equal"`
	Verbose    int    `name:"verbose" short:"v" type:"counter"`
}

// Config is the on-disk form of a comparer.
type Config struct {
	Comparer *compare.Comparer `yaml:"comparer"`
}

func main() {
	kong.Parse(&cli, kong.Description("Sort lines using culture-aware collation."))
	prepareLogLevel(cli.Verbose)
	defer logger.Sync()

	cmp, err := resolveComparer()
	if err != nil {
		logger.Fatal("resolve comparer", zap.Error(err))
	}
	logger.Info("comparer resolved", zap.String("token", cmp.Token()))

	outFile, err := openWriteFile(cli.Out)
	if err != nil {
		logger.Fatal("open output file", zap.String("file", cli.Out), zap.Error(err))
	}
	defer outFile.Close()

	if cli.DumpConfig {
		if err := writeConfig(outFile, cmp); err != nil {
			logger.Fatal("write config", zap.Error(err))
		}
		return
	}

	inFile, err := openReadFile(cli.In)
	if err != nil {
		logger.Fatal("open input file", zap.String("file", cli.In), zap.Error(err))
	}
	defer inFile.Close()

	lines, err := readLines(inFile)
	if err != nil {
		logger.Fatal("read lines", zap.Error(err))
	}
	logger.Debug("lines read", zap.Int("count", len(lines)))

	sorted, err := sortLines(lines, cmp, cli.Reverse, cli.Unique)
	if err != nil {
		logger.Fatal("sort lines", zap.Error(err))
	}

	if err := writeLines(outFile, sorted); err != nil {
		logger.Fatal("write lines", zap.Error(err))
	}
}

func resolveComparer() (*compare.Comparer, error) {
	switch {
	case cli.Config != "":
		return loadConfig(cli.Config)
	case cli.Invariant:
		return compare.DefaultInvariant(), nil
	case cli.Locale != "":
		tag, err := compare.ParsePosixLocale(cli.Locale)
		if err != nil {
			return nil, err
		}
		return compare.ForLocale(tag.String())
	default:
		return compare.Default(), nil
	}
}

func loadConfig(path string) (*compare.Comparer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.Comparer == nil {
		return nil, fmt.Errorf("config %s: %w", path, compare.ErrMissingConfiguration)
	}
	return cfg.Comparer, nil
}

func writeConfig(out io.Writer, cmp *compare.Comparer) error {
	enc := yaml.NewEncoder(out)
	if err := enc.Encode(Config{Comparer: cmp}); err != nil {
		return err
	}
	return enc.Close()
}

func readLines(in io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func writeLines(out io.Writer, lines []string) error {
	w := bufio.NewWriter(out)
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return w.Flush()
}

// sortLines collates lines with cmp. Lines that collate equal keep a
// deterministic order by their bytes; with unique only the first of them
// is kept.
func sortLines(lines []string, cmp compare.Comparator, reverse, unique bool) ([]string, error) {
	values := make([]any, len(lines))
	for i, l := range lines {
		values[i] = l
	}

	order := compare.Chain(cmp, compare.BasicComparator{})
	if reverse {
		order = compare.Reverse(order)
	}
	if err := collections.Sort(order, values); err != nil {
		return nil, err
	}

	result := make([]string, 0, len(values))
	for i, v := range values {
		if unique && i > 0 {
			n, err := cmp.Compare(values[i-1], v)
			if err != nil {
				return nil, err
			}
			if n == 0 {
				continue
			}
		}
		result = append(result, v.(string))
	}
	return result, nil
}

func openReadFile(file string) (*os.File, error) {
	if file == "-" {
		return os.Stdin, nil
	}

	return os.Open(file)
}

func openWriteFile(file string) (*os.File, error) {
	if file == "-" {
		return os.Stdout, nil
	}

	return os.OpenFile(file, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
}
