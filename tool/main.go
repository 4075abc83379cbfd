package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/alecthomas/participle"

	. "github.com/dave/jennifer/jen"
)

type TypeDecls struct {
	Declarations []*Declaration `@@*`
}

type TField struct {
	Name string `@Ident`
	Kind string `(@Ident | @String | @RawString) ","?`
}

type TCase struct {
	Name   string    `"|" @Ident "of"`
	Fields []*TField `(  "{" @@+ "}"`
	Kind   string    ` | @Ident | @String | @RawString)`
}

type Declaration struct {
	Name  string   `"type" @Ident "="?`
	Plain *string  `(  (@Ident | @String | @RawString)`
	Many  []*TCase ` | @@+)`
	I     struct{} `";"`
}

func (t *TypeDecls) IsSumType(name string) bool {
	for _, decls := range t.Declarations {
		if decls.Name == name && decls.Many != nil {
			return true
		}
	}
	return false
}

func GenerateDecls(pkgname string, t *TypeDecls) string {
	f := NewFile(pkgname)
	f.HeaderComment("Code generated by adtGen. DO NOT EDIT.")

	for _, decl := range t.Declarations {
		if decl.Plain != nil {
			f.Type().Id(decl.Name).Id(*decl.Plain)
			continue
		}

		f.Type().Id(decl.Name).Interface(
			Id("is_" + decl.Name).Params(),
		)

		for _, it := range decl.Many {
			switch {
			case len(it.Fields) > 0:
				var fields []Code
				for _, field := range it.Fields {
					fields = append(fields, Id(field.Name).Id(field.Kind))
				}
				f.Type().Id(it.Name).Struct(fields...)
			case t.IsSumType(it.Kind):
				f.Type().Id(it.Name).Struct(Id(it.Kind))
			default:
				f.Type().Id(it.Name).Id(it.Kind)
			}

			f.Func().Params(Id("v").Id(it.Name)).Id("is_" + decl.Name).Params().Block()
		}
	}

	return fmt.Sprintf("%#v", f)
}

var parser = participle.MustBuild(&TypeDecls{}, participle.Unquote("String", "RawString"))

func ParseDecls(data []byte) (*TypeDecls, error) {
	ast := &TypeDecls{}
	if err := parser.ParseBytes(data, ast); err != nil {
		return nil, err
	}
	return ast, nil
}

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintln(os.Stderr, "usage: adtGen <input.types> <output.go> <package>")
		os.Exit(2)
	}

	in := os.Args[1]
	out := os.Args[2]
	pkgname := os.Args[3]

	inData, err := ioutil.ReadFile(in)
	if err != nil {
		panic(err)
	}

	ast, err := ParseDecls(inData)
	if err != nil {
		panic(err)
	}

	err = ioutil.WriteFile(out, []byte(GenerateDecls(pkgname, ast)), 0644)
	if err != nil {
		panic(err)
	}
}
