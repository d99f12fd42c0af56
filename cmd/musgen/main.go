package main

import (
	"os"
	"reflect"
	"strings"

	musgen "github.com/mus-format/musgen-go/mus"
	genops "github.com/mus-format/musgen-go/options/generate"
	structops "github.com/mus-format/musgen-go/options/struct"
	typeops "github.com/mus-format/musgen-go/options/type"
	"github.com/poiesic/instanote/core"
)

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	// go generate runs from core/
	if strings.HasSuffix(cwd, "core") {
		if err := os.Chdir(".."); err != nil {
			panic(err)
		}
	}
	g, err := musgen.NewCodeGenerator(
		genops.WithPkgPath("github.com/poiesic/instanote/core"),
	)
	if err != nil {
		panic(err)
	}

	g.AddDefinedType(reflect.TypeFor[core.NoteType]())
	g.AddDefinedType(reflect.TypeFor[core.ID]())

	// CreatedAt as Unix micro
	err = g.AddStruct(reflect.TypeFor[core.Note](),
		structops.WithField(), // ID
		structops.WithField(), // Type
		structops.WithField(), // Source
		structops.WithField(), // URL
		structops.WithField(), // Title
		structops.WithField(), // Content
		structops.WithField(), // Summary
		structops.WithField(), // Category
		structops.WithField(), // Keywords
		structops.WithField(), // Media
		structops.WithField(typeops.WithTimeUnit(typeops.Micro)))
	if err != nil {
		panic(err)
	}

	bs, err := g.Generate()
	if err != nil {
		panic(err)
	}

	err = os.WriteFile("./core/note_mus.gen.go", bs, 0644)
	if err != nil {
		panic(err)
	}
}
