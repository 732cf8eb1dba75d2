package generator

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"

	"git.weirdcat.su/weirdcat/nestdto-gen/internal/naming"
	"git.weirdcat.su/weirdcat/nestdto-gen/internal/types"
)

// RenderGo emits both DTO variants of one entity as Go struct definitions
// with go-playground/validator tags. The update variant uses pointer fields
// so absent values survive JSON decoding, mirroring the partial-view
// semantics of the TypeScript target.
func RenderGo(entity types.EntityModel, specs []types.DtoFieldSpec, pkg string) (File, error) {
	f := jen.NewFile(pkg)
	f.HeaderComment("Code generated by nestdto-gen. DO NOT EDIT.")

	f.Comment(fmt.Sprintf("Create%sDto carries the fields accepted when creating a %s.", entity.Name, entity.Name))
	f.Type().Id("Create" + entity.Name + "Dto").Struct(goFields(specs, false)...)
	f.Line()

	f.Comment(fmt.Sprintf("Update%sDto is a partial view of Create%sDto.", entity.Name, entity.Name))
	f.Type().Id("Update" + entity.Name + "Dto").Struct(goFields(specs, true)...)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return File{}, fmt.Errorf("rendering Go target for %s: %w", entity.Name, err)
	}

	return File{Name: GoDtoFileName(entity.Name), Content: buf.String()}, nil
}

// GoDtoFileName returns the generated file name of the Go target.
func GoDtoFileName(entity string) string {
	return strings.ReplaceAll(naming.Kebab(entity), "-", "_") + "_dto.go"
}

func goFields(specs []types.DtoFieldSpec, partial bool) []jen.Code {
	fields := make([]jen.Code, 0, len(specs))
	for _, spec := range specs {
		stmt := jen.Id(naming.Pascal(naming.UpperFirst(spec.Name)))

		typ := goType(spec)
		pointer := partial && spec.CanonicalType != types.TypeArray && !spec.IsArray
		if pointer {
			stmt.Op("*")
		}
		stmt.Add(typ)

		jsonTag := spec.Name
		if partial || !spec.Required {
			jsonTag += ",omitempty"
		}
		stmt.Tag(map[string]string{
			"json":     jsonTag,
			"validate": validateTag(spec, partial),
		})

		fields = append(fields, stmt)
	}
	return fields
}

func goType(spec types.DtoFieldSpec) jen.Code {
	var elem jen.Code
	switch spec.CanonicalType {
	case types.TypeString:
		elem = jen.String()
	case types.TypeNumber:
		elem = jen.Float64()
	case types.TypeBoolean:
		elem = jen.Bool()
	case types.TypeDate:
		elem = jen.Qual("time", "Time")
	case types.TypeArray:
		return jen.Index().Any()
	default:
		elem = jen.Any()
	}

	if spec.IsArray {
		return jen.Index().Add(elem)
	}
	return elem
}

// validateTag translates the field's validation rules into a
// go-playground/validator tag. The update variant is always omitempty.
func validateTag(spec types.DtoFieldSpec, partial bool) string {
	parts := []string{"required"}
	if partial || !spec.Required {
		parts = []string{"omitempty"}
	}

	for _, rule := range spec.Rules {
		if rule == types.RuleIsPositive {
			parts = append(parts, "gt=0")
		}
	}

	return strings.Join(parts, ",")
}
