// gencmd generates the numeric constructor and tuple strategy files from
// their arity and type tables.
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"strings"
	"text/template"

	"github.com/dave/jennifer/jen"
	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

const genPkg = "github.com/syssam/falsify/gen"

const header = `// Code generated by "go run ./internal/gencmd"; DO NOT EDIT.`

func main() {
	if err := genNumeric(); err != nil {
		log.Fatal("generating numeric.go: ", err)
	}
	if err := genTuples(); err != nil {
		log.Fatal("generating tuple.go: ", err)
	}
}

func genNumeric() error {
	buf, err := os.ReadFile("internal/gencmd/numeric.tmpl")
	if err != nil {
		return fmt.Errorf("reading template file: %w", err)
	}
	titleCaser := cases.Title(language.English)
	tmpl := template.Must(template.New("numeric").
		Funcs(template.FuncMap{"title": titleCaser.String, "hasPrefix": strings.HasPrefix}).
		Parse(string(buf)))
	b := &bytes.Buffer{}
	err = tmpl.Execute(b, struct {
		Ints, Floats []string
	}{
		Ints: []string{
			"int", "int8", "int16", "int32", "int64",
			"uint", "uint8", "uint16", "uint32", "uint64",
		},
		Floats: []string{"float32", "float64"},
	})
	if err != nil {
		return fmt.Errorf("executing template: %w", err)
	}
	return write("numeric.go", b.Bytes())
}

// arity holds the per-tuple-size naming tables consumed by the jennifer
// builders below.
type arity struct {
	n      int
	params []string // type parameter names, A..L
	fields []string // receiver field names, a..l
}

func arities() []arity {
	letters := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"}
	var out []arity
	for n := 2; n <= len(letters); n++ {
		a := arity{n: n, params: letters[:n]}
		for _, p := range letters[:n] {
			a.fields = append(a.fields, strings.ToLower(p))
		}
		out = append(out, a)
	}
	return out
}

// typeParams renders [A any, B any, ...] on a declaration.
func (a arity) typeParams(s *jen.Statement) {
	types := make([]jen.Code, len(a.params))
	for i, p := range a.params {
		types[i] = jen.Id(p).Any()
	}
	s.Types(types...)
}

// paramRefs renders [A, B, ...] on a use site.
func (a arity) paramRefs() []jen.Code {
	refs := make([]jen.Code, len(a.params))
	for i, p := range a.params {
		refs[i] = jen.Id(p)
	}
	return refs
}

func genTuples() error {
	f := jen.NewFile("strategy")
	f.HeaderComment(header)

	for _, a := range arities() {
		tuple := fmt.Sprintf("Tuple%d", a.n)
		strategyName := tuple + "Strategy"
		treeName := tuple + "ValueTree"

		f.Commentf("%s holds %d values drawn from independent strategies.", tuple, a.n)
		decl := f.Type().Id(tuple)
		a.typeParams(decl)
		decl.StructFunc(func(g *jen.Group) {
			for _, p := range a.params {
				g.Id(p).Id(p)
			}
		})

		f.Commentf("%s draws %s values component by component.", strategyName, tuple)
		decl = f.Type().Id(strategyName)
		a.typeParams(decl)
		decl.StructFunc(func(g *jen.Group) {
			for i, field := range a.fields {
				g.Id(field).Id("Strategy").Index(jen.Id(a.params[i]))
			}
		})

		f.Commentf("%sOf returns a strategy producing %s values.", tuple, tuple)
		ctor := f.Func().Id(tuple + "Of")
		a.typeParams(ctor)
		ctor.ParamsFunc(func(g *jen.Group) {
			for i, field := range a.fields {
				g.Id(field).Id("Strategy").Index(jen.Id(a.params[i]))
			}
		}).Op("*").Id(strategyName).Index(a.paramRefs()...).BlockFunc(func(g *jen.Group) {
			g.Return(jen.Op("&").Id(strategyName).Index(a.paramRefs()...).ValuesFunc(func(vals *jen.Group) {
				for _, field := range a.fields {
					vals.Id(field).Op(":").Id(field)
				}
			}))
		})

		f.Comment("NewTree draws every component. Fixed-shape composites have no partial")
		f.Comment("result to hand back, so an inner rejection panics.")
		f.Func().Params(jen.Id("s").Op("*").Id(strategyName).Index(a.paramRefs()...)).
			Id("NewTree").Params(jen.Id("g").Op("*").Qual(genPkg, "Gen")).
			Qual(genPkg, "Outcome").Index(jen.Id("ValueTree").Index(jen.Id(tuple).Index(a.paramRefs()...))).
			BlockFunc(func(g *jen.Group) {
				outs := make([]jen.Code, len(a.fields))
				for i, field := range a.fields {
					out := field + "Out"
					outs[i] = jen.Id(out).Dot("Value")
					g.Id(out).Op(":=").Id("s").Dot(field).Dot("NewTree").Call(jen.Id("g"))
					g.If(jen.Op("!").Id(out).Dot("Accepted").Call()).Block(
						jen.Panic(jen.Qual("fmt", "Sprintf").Call(
							jen.Lit(fmt.Sprintf("falsify: tuple component %d rejected (iteration %%d, depth %%d)", i)),
							jen.Id(out).Dot("Iteration"),
							jen.Id(out).Dot("Depth"),
						)),
					)
				}
				g.Return(jen.Qual(genPkg, "Accept").Index(jen.Id("ValueTree").Index(jen.Id(tuple).Index(a.paramRefs()...))).
					Call(jen.Id("g"), jen.Id("New"+tuple+"Tree").Call(outs...)))
			})

		f.Commentf("%s shrinks components left to right, restarting the scan", treeName)
		f.Commentf("from the %s component after every accepted step.", inflect.Ordinalize("1"))
		decl = f.Type().Id(treeName)
		a.typeParams(decl)
		decl.StructFunc(func(g *jen.Group) {
			for i, field := range a.fields {
				g.Id(field).Id("ValueTree").Index(jen.Id(a.params[i]))
			}
			g.Id("current").Id(tuple).Index(a.paramRefs()...)
			g.Id("lastChanged").Int()
		})

		f.Commentf("New%sTree builds a tuple tree over the given component trees.", tuple)
		ctor = f.Func().Id("New" + tuple + "Tree")
		a.typeParams(ctor)
		ctor.ParamsFunc(func(g *jen.Group) {
			for i, field := range a.fields {
				g.Id(field).Id("ValueTree").Index(jen.Id(a.params[i]))
			}
		}).Op("*").Id(treeName).Index(a.paramRefs()...).BlockFunc(func(g *jen.Group) {
			g.Id("t").Op(":=").Op("&").Id(treeName).Index(a.paramRefs()...).ValuesFunc(func(vals *jen.Group) {
				for _, field := range a.fields {
					vals.Id(field).Op(":").Id(field)
				}
				vals.Id("lastChanged").Op(":").Lit(-1)
			})
			g.Id("t").Dot("sync").Call()
			g.Return(jen.Id("t"))
		})

		recv := func() *jen.Statement {
			return jen.Params(jen.Id("t").Op("*").Id(treeName).Index(a.paramRefs()...))
		}

		f.Func().Add(recv()).Id("sync").Params().BlockFunc(func(g *jen.Group) {
			g.Id("t").Dot("current").Op("=").Id(tuple).Index(a.paramRefs()...).ValuesFunc(func(vals *jen.Group) {
				for i, field := range a.fields {
					vals.Id(a.params[i]).Op(":").Id("t").Dot(field).Dot("Current").Call()
				}
			})
		})

		f.Func().Add(recv()).Id("Current").Params().Id(tuple).Index(a.paramRefs()...).Block(
			jen.Return(jen.Id("t").Dot("current")),
		)

		f.Func().Add(recv()).Id("Simplify").Params().Bool().BlockFunc(func(g *jen.Group) {
			for i, field := range a.fields {
				g.If(jen.Id("t").Dot(field).Dot("Simplify").Call()).Block(
					jen.Id("t").Dot("sync").Call(),
					jen.Id("t").Dot("lastChanged").Op("=").Lit(i),
					jen.Return(jen.True()),
				)
			}
			g.Return(jen.False())
		})

		f.Func().Add(recv()).Id("Complicate").Params().Bool().BlockFunc(func(g *jen.Group) {
			g.Var().Id("ok").Bool()
			g.Switch(jen.Id("t").Dot("lastChanged")).BlockFunc(func(sw *jen.Group) {
				for i, field := range a.fields {
					sw.Case(jen.Lit(i)).Block(jen.Id("ok").Op("=").Id("t").Dot(field).Dot("Complicate").Call())
				}
				sw.Default().Block(jen.Return(jen.False()))
			})
			g.Id("t").Dot("sync").Call()
			g.If(jen.Op("!").Id("ok")).Block(jen.Id("t").Dot("lastChanged").Op("=").Lit(-1))
			g.Return(jen.Id("ok"))
		})
	}

	b := &bytes.Buffer{}
	if err := f.Render(b); err != nil {
		return fmt.Errorf("rendering file: %w", err)
	}
	return write("tuple.go", b.Bytes())
}

// write runs goimports over src before writing, dropping imports a table
// change no longer needs.
func write(name string, src []byte) error {
	out, err := imports.Process(name, src, nil)
	if err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}
	if err := os.WriteFile(name, out, 0o644); err != nil {
		return fmt.Errorf("writing go file: %w", err)
	}
	return nil
}
