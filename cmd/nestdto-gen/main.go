package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"git.weirdcat.su/weirdcat/nestdto-gen/internal/config"
	"git.weirdcat.su/weirdcat/nestdto-gen/internal/generator"
	"git.weirdcat.su/weirdcat/nestdto-gen/internal/logger"
	"git.weirdcat.su/weirdcat/nestdto-gen/internal/mapper"
	"git.weirdcat.su/weirdcat/nestdto-gen/internal/parser"
	"git.weirdcat.su/weirdcat/nestdto-gen/internal/types"
	"git.weirdcat.su/weirdcat/nestdto-gen/internal/validator"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "nestdto-gen",
		Usage: "generate create/update DTO classes from entity declarations",
		Commands: []*cli.Command{
			{
				Name:   "generate",
				Usage:  "scan a directory for entity files and generate their DTOs",
				Action: generate,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "dir", Value: ".", Usage: "root directory to scan for entity files"},
					&cli.BoolFlag{Name: "recursive", Aliases: []string{"r"}, Usage: "descend into subdirectories"},
					&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "path to nestdto.yaml"},
					&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "verbose output"},
					&cli.BoolFlag{Name: "dry-run", Usage: "print generated files instead of writing them"},
				},
			},
		},
	}
}

func generate(ctx *cli.Context) error {
	logger.SetVerbose(ctx.Bool("verbose"))

	cfg, err := config.Load(ctx.String("config"))
	if err != nil {
		return err
	}

	dir := ctx.String("dir")
	files, err := parser.FindEntityFiles(dir, ctx.Bool("recursive"), cfg.EntitySuffix)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", dir, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no %s files found under %s", cfg.EntitySuffix, dir)
	}
	logger.Info("Found %d entity file(s) under %s", len(files), dir)

	entities := make([]types.EntityModel, 0, len(files))
	for _, path := range files {
		text, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		entities = append(entities, parser.ParseEntity(path, string(text)))
	}

	lint := validator.Validate(entities)
	if !lint.IsValid() {
		return fmt.Errorf("lint found %d blocking error(s)", len(lint.Errors))
	}

	pol := mapper.Policy{
		RelationsRequired: cfg.Policy.RelationsRequired,
		PositiveNumbers:   cfg.Policy.PositiveNumbers,
	}

	generated := 0
	for _, entity := range entities {
		if len(entity.Fields) == 0 {
			// Already reported by the lint pass; the rest of the batch
			// continues.
			continue
		}

		specs := mapper.MapFields(entity.Fields, pol)

		var outputs []generator.File
		if cfg.HasTarget("ts") {
			outputs = append(outputs, generator.RenderTS(entity, specs)...)
		}
		if cfg.HasTarget("go") {
			goFile, err := generator.RenderGo(entity, specs, cfg.GoPackage)
			if err != nil {
				return err
			}
			outputs = append(outputs, goFile)
		}

		outDir := cfg.OutputDir
		if outDir == "" {
			outDir = filepath.Join(filepath.Dir(entity.SourcePath), "dto")
		}

		if err := writeFiles(outDir, outputs, ctx.Bool("dry-run")); err != nil {
			return fmt.Errorf("writing DTOs for %s: %w", entity.Name, err)
		}

		logger.Verbose("Generated %d file(s) for %s", len(outputs), entity.Name)
		generated++
	}

	logger.Success("Generated DTOs for %d of %d entities", generated, len(entities))
	return nil
}

func writeFiles(dir string, files []generator.File, dryRun bool) error {
	if dryRun {
		for _, file := range files {
			logger.Info("--- %s ---\n%s", filepath.Join(dir, file.Name), file.Content)
		}
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, file := range files {
		if err := os.WriteFile(filepath.Join(dir, file.Name), []byte(file.Content), 0o644); err != nil {
			return err
		}
	}
	return nil
}
