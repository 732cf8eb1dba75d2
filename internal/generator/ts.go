// Package generator renders mapped DTO field specifications into output
// files. The textual shape of the generated code (decorator lines, import
// lists) is owned here, not by the extractor or the mapper.
package generator

import (
	"sort"
	"strings"

	"git.weirdcat.su/weirdcat/nestdto-gen/internal/naming"
	"git.weirdcat.su/weirdcat/nestdto-gen/internal/types"
)

// File is one rendered output file.
type File struct {
	Name    string
	Content string
}

// decorators maps validation rules to their class-validator /
// class-transformer decorator lines.
var decorators = map[types.Rule]string{
	types.RuleIsString:                "@IsString()",
	types.RuleIsNumber:                "@IsNumber()",
	types.RuleIsPositive:              "@IsPositive()",
	types.RuleIsBoolean:               "@IsBoolean()",
	types.RuleIsDate:                  "@IsDate()",
	types.RuleIsArray:                 "@IsArray()",
	types.RuleIsNotEmpty:              "@IsNotEmpty()",
	types.RuleIsOptional:              "@IsOptional()",
	types.RuleNumericRelationCoercion: "@Type(() => Number)",
}

// RenderTS renders the create and update DTO classes for one entity. The
// update variant is a partial view of the create variant. Fields are written
// in sequence order, so when a name repeats the later declaration wins.
func RenderTS(entity types.EntityModel, specs []types.DtoFieldSpec) []File {
	return []File{
		{Name: CreateDtoFileName(entity.Name), Content: renderCreate(entity, specs)},
		{Name: UpdateDtoFileName(entity.Name), Content: renderUpdate(entity.Name)},
	}
}

// CreateDtoFileName returns the generated file name of the create variant.
func CreateDtoFileName(entity string) string {
	return "create-" + naming.Kebab(entity) + ".dto.ts"
}

// UpdateDtoFileName returns the generated file name of the update variant.
func UpdateDtoFileName(entity string) string {
	return "update-" + naming.Kebab(entity) + ".dto.ts"
}

func renderCreate(entity types.EntityModel, specs []types.DtoFieldSpec) string {
	var b strings.Builder

	validatorNames := make(map[string]bool)
	coercion := false
	for _, spec := range specs {
		validatorNames[string(spec.Presence)] = true
		for _, rule := range spec.Rules {
			if rule == types.RuleNumericRelationCoercion {
				coercion = true
				continue
			}
			validatorNames[string(rule)] = true
		}
	}

	names := make([]string, 0, len(validatorNames))
	for name := range validatorNames {
		names = append(names, name)
	}
	sort.Strings(names)

	if len(names) > 0 {
		b.WriteString("import { ")
		b.WriteString(strings.Join(names, ", "))
		b.WriteString(" } from 'class-validator';\n")
	}
	if coercion {
		b.WriteString("import { Type } from 'class-transformer';\n")
	}
	b.WriteString("\n")

	b.WriteString("export class Create")
	b.WriteString(entity.Name)
	b.WriteString("Dto {\n")

	for i, spec := range specs {
		if i > 0 {
			b.WriteString("\n")
		}

		b.WriteString("  ")
		b.WriteString(decorators[spec.Presence])
		b.WriteString("\n")
		for _, rule := range spec.Rules {
			b.WriteString("  ")
			b.WriteString(decorators[rule])
			b.WriteString("\n")
		}

		b.WriteString("  ")
		b.WriteString(spec.Name)
		if !spec.Required {
			b.WriteString("?")
		}
		b.WriteString(": ")
		b.WriteString(tsType(entity.Fields[i], spec))
		b.WriteString(";\n")
	}

	b.WriteString("}\n")
	return b.String()
}

func renderUpdate(entityName string) string {
	var b strings.Builder

	b.WriteString("import { PartialType } from '@nestjs/mapped-types';\n")
	b.WriteString("import { Create")
	b.WriteString(entityName)
	b.WriteString("Dto } from './create-")
	b.WriteString(naming.Kebab(entityName))
	b.WriteString(".dto';\n\n")

	b.WriteString("export class Update")
	b.WriteString(entityName)
	b.WriteString("Dto extends PartialType(Create")
	b.WriteString(entityName)
	b.WriteString("Dto) {}\n")

	return b.String()
}

// tsType picks the written type of a DTO field. Plain fields keep their
// declared type verbatim; relation foreign keys are numeric.
func tsType(raw types.RawField, spec types.DtoFieldSpec) string {
	if raw.IsRelation {
		if spec.IsArray {
			return "number[]"
		}
		return "number"
	}
	if raw.DeclaredType != "" {
		return raw.DeclaredType
	}
	return "any"
}
