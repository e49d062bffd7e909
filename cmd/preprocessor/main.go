package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/Monocerum/escolar/pkg/campus"
	"github.com/Monocerum/escolar/pkg/engine"
	"github.com/Monocerum/escolar/pkg/logger"
	"github.com/Monocerum/escolar/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	input  = flag.String("input", "./data/campus.json", "campus file (json, hcl, .osm or .osm.pbf)")
	output = flag.String("output", "./data/campus.snapshot.bz2", "output written after validation: a .json campus file or a bzip2 snapshot")
)

// preprocessor converts a campus file into a bzip2 snapshot or json, refusing campuses that do not build into a graph.
func main() {
	flag.Parse()
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	src, err := engine.LoadSource(context.Background(), *input, logger)
	if err != nil {
		logger.Fatal("failed to read campus", zap.String("input", *input), zap.Error(err))
	}

	e, err := engine.NewEngineFromSource(src, viper.GetFloat64("PROJECTION_WIDTH"),
		viper.GetFloat64("PROJECTION_HEIGHT"), logger, nil)
	if err != nil {
		logger.Fatal("campus does not build into a graph", zap.Error(err))
	}

	if err := write(*output, src); err != nil {
		logger.Fatal("failed to write campus", zap.String("output", *output), zap.Error(err))
	}

	logger.Sugar().Infof("Preprocessing completed successfully: %d places, %d walkways written to %s",
		e.GetGraph().NumberOfVertices(), e.GetGraph().NumberOfEdges(), *output)
}

func write(filename string, src *campus.Source) error {
	if strings.ToLower(filepath.Ext(filename)) != ".json" {
		return campus.WriteSnapshot(filename, src)
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := campus.WriteJSON(f, src); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
