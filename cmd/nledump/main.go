// Command nledump evaluates one node against synthetic inputs and prints
// the generated program or the CPU output table.
//
// Usage:
//
//	nledump -a texture -b float -method multiply -dialect glsl
//	nledump -a samples -b samples -values 1,2:3
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/nle"
	"github.com/gogpu/nle/catalog"
	"github.com/gogpu/nle/node"
	"github.com/gogpu/nle/shader"
	"github.com/gogpu/nle/value"
	"golang.org/x/text/language"
)

func main() {
	var (
		nodeID  = flag.String("node", "org.olivevideoeditor.Olive.math", "node id")
		method  = flag.String("method", "add", "operation: add, subtract, multiply, divide")
		kindA   = flag.String("a", "texture", "first operand kind: texture, float, samples, none")
		kindB   = flag.String("b", "float", "second operand kind: texture, float, samples, none")
		values  = flag.String("values", "1,2:3", "sample values as a:b, comma separated")
		dialect = flag.String("dialect", "wgsl", "program dialect: glsl, wgsl")
		lang    = flag.String("lang", "en", "language of node strings")
		compile = flag.Bool("compile", false, "compile WGSL programs with naga")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		nle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	n, err := catalog.Default.New(*nodeID)
	if err != nil {
		log.Fatal(err)
	}
	tag, err := language.Parse(*lang)
	if err != nil {
		log.Fatalf("bad -lang: %v", err)
	}
	s := catalog.Localize(n, tag)
	fmt.Printf("# %s (%s): %s\n", s.Name, s.Category, s.Description)

	d, err := parseDialect(*dialect)
	if err != nil {
		log.Fatal(err)
	}
	sa, sb, err := parseSamples(*values)
	if err != nil {
		log.Fatal(err)
	}

	db := value.NewDatabase()
	inputs := n.Inputs()
	operand := 0
	for _, in := range inputs {
		if in.DataType() == value.KindText {
			db.Insert(in.ID(), value.NewTable(value.Text(*method)))
			continue
		}
		kind, samples := *kindA, sa
		if operand > 0 {
			kind, samples = *kindB, sb
		}
		operand++
		t, err := operandTable(kind, samples)
		if err != nil {
			log.Fatal(err)
		}
		db.Insert(in.ID(), t)
	}

	res, err := nle.NewProcessor(nle.WithDialect(d)).Process(n, db)
	if err != nil && !errors.Is(err, nle.ErrNoBackend) {
		log.Fatal(err)
	}
	fmt.Printf("# capability: %s\n", res.Capability)

	if res.Capability == node.Normal {
		for _, v := range res.Table.Values() {
			if sm, ok := v.Samples(); ok {
				fmt.Printf("%s %v\n", v, sm.Floats())
				continue
			}
			fmt.Println(v)
		}
		return
	}

	fmt.Printf("# identity: %s (%s)\n", res.Program.Identity, res.Program.Identity.Label())
	fmt.Print(res.Program.Source)

	if *compile {
		if res.Program.Dialect != shader.WGSL {
			log.Fatalf("-compile needs -dialect wgsl")
		}
		spirv, err := naga.Compile(res.Program.Source)
		if err != nil {
			log.Fatalf("compile: %v", err)
		}
		log.Printf("compiled to %d bytes of SPIR-V\n", len(spirv))
	}
}

func parseDialect(s string) (shader.Dialect, error) {
	switch strings.ToLower(s) {
	case "glsl":
		return shader.GLSL, nil
	case "wgsl":
		return shader.WGSL, nil
	}
	return 0, fmt.Errorf("unknown dialect %q", s)
}

func operandTable(kind string, samples []float32) (value.Table, error) {
	switch strings.ToLower(kind) {
	case "texture":
		return value.NewTable(value.TextureValue(value.Texture{
			ID: 1, Width: 1920, Height: 1080, Format: gputypes.TextureFormatRGBA8Unorm,
		})), nil
	case "float":
		return value.NewTable(value.Float(1)), nil
	case "samples":
		return value.NewTable(value.SamplesValue(value.SamplesFromFloats(samples))), nil
	case "none", "":
		return value.Table{}, nil
	}
	return value.Table{}, fmt.Errorf("unknown kind %q", kind)
}

// parseSamples parses "1,2:3" into the two operands' sample values.
func parseSamples(s string) (a, b []float32, err error) {
	left, right, _ := strings.Cut(s, ":")
	if a, err = parseFloats(left); err != nil {
		return nil, nil, err
	}
	if b, err = parseFloats(right); err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func parseFloats(s string) ([]float32, error) {
	var out []float32
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return nil, fmt.Errorf("bad sample %q: %w", f, err)
		}
		out = append(out, float32(v))
	}
	return out, nil
}
