package storage

import (
	"context"
	"fmt"
	"slices"

	apperrors "github.com/pudimbot/pudim-go/internal/errors"
)

// DefaultCourses is the fixed program set the resolver matches against.
// Codes and full names both join the fuzzy candidate pool.
var DefaultCourses = []Course{
	{Code: "cc", FullName: "ciência da computação"},
	{Code: "ema", FullName: "engenharia de materiais"},
	{Code: "emp", FullName: "engenharia de produção"},
	{Code: "emt", FullName: "engenharia de mecatrônica"},
	{Code: "tads", FullName: "tecnologia em análise de desenvolvimento"},
	{Code: "tcn", FullName: "tecnologia de construção naval"},
}

var seedSchedules = map[string][]ScheduleRow{
	"cc": {
		{Subject: "CÁLCULO I", TimeRange: "08:00 - 10:00", Professor: "Ana Souza", Room: "101"},
		{Subject: "FÍSICA I", TimeRange: "10:00 - 12:00", Professor: "Bruno Lima", Room: "102"},
		{Subject: "ALGORITMOS", TimeRange: "14:00 - 16:00", Professor: "Carla Nunes", Room: "Lab 1"},
		{Subject: "SISTEMAS DIGITAIS", TimeRange: "16:00 - 18:00", Professor: "Diego Alves", Room: "103"},
		{Subject: "INTELIGÊNCIA COMPUTACIONAL I", TimeRange: "18:00 - 20:00", Professor: "Elisa Prado", Room: "Lab 2"},
	},
	"ema": {
		{Subject: "QUÍMICA GERAL", TimeRange: "08:00 - 10:00", Professor: "Fábio Reis", Room: "201"},
		{Subject: "CIÊNCIA DOS MATERIAIS I", TimeRange: "10:00 - 12:00", Professor: "Gabriela Dias", Room: "202"},
	},
	"emp": {
		{Subject: "PESQUISA OPERACIONAL", TimeRange: "08:00 - 10:00", Professor: "Hugo Matos", Room: "301"},
		{Subject: "GESTÃO DA QUALIDADE", TimeRange: "14:00 - 16:00", Professor: "Iara Campos", Room: "302"},
	},
	"emt": {
		{Subject: "CIRCUITOS ELÉTRICOS I", TimeRange: "08:00 - 10:00", Professor: "João Brito", Room: "401"},
		{Subject: "ROBÓTICA II", TimeRange: "16:00 - 18:00", Professor: "Karen Melo", Room: "Lab 3"},
	},
	"tads": {
		{Subject: "BANCO DE DADOS I", TimeRange: "18:00 - 20:00", Professor: "Lucas Viana", Room: "501"},
		{Subject: "PROGRAMAÇÃO WEB", TimeRange: "20:00 - 22:00", Professor: "Marina Costa", Room: "Lab 4"},
	},
	"tcn": {
		{Subject: "HIDROSTÁTICA", TimeRange: "08:00 - 10:00", Professor: "Nelson Paiva", Room: "601"},
		{Subject: "ESTRUTURAS NAVAIS I", TimeRange: "10:00 - 12:00", Professor: "Olívia Rocha", Room: "602"},
	},
}

// Seed loads the bundled course set and sample schedule tables. Intended
// for first runs and tests; a database already populated by the extraction
// pipeline is left untouched.
func (db *DB) Seed(ctx context.Context) error {
	count, err := db.CountScheduleRows(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, course := range DefaultCourses {
		if err := db.SaveCourse(ctx, &course); err != nil {
			return err
		}
	}
	for code, rows := range seedSchedules {
		if !slices.ContainsFunc(DefaultCourses, func(c Course) bool { return c.Code == code }) {
			return fmt.Errorf("seed table %q: %w", code, apperrors.ErrCourseUnknown)
		}
		if err := db.SaveScheduleRowsBatch(ctx, code, rows); err != nil {
			return err
		}
	}

	return nil
}
