// SPDX-License-Identifier: MIT
package funlex

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"gitlab.com/fisherprime/funlex/lexer"
)

const mainModule = `module Main exposing (main)

import Html exposing (text)


main =
    text "hello"
`

func TestLex(t *testing.T) {
	type args struct {
		ctx context.Context
		m   Module
	}
	tests := []struct {
		name          string
		args          args
		wantLexemes   int
		wantRecovered int
		wantErr       bool
	}{
		{name: "valid", args: args{context.Background(), Module{"Main", mainModule}}, wantLexemes: 28},
		{name: "recovered", args: args{context.Background(), Module{"Bad", "x = \"abc"}}, wantLexemes: 5, wantRecovered: 1},
		{name: "invalid", args: args{context.Background(), Module{"Tab", "x =\t1"}}, wantLexemes: 3, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lex(tt.args.ctx, tt.args.m)
			if (got.Err != nil) != tt.wantErr {
				t.Errorf("Lex() error = %v, wantErr %v", got.Err, tt.wantErr)
				return
			}
			if len(got.Lexemes) != tt.wantLexemes {
				t.Errorf("Lex() lexemes = %d, want %d\n%s", len(got.Lexemes), tt.wantLexemes, Format(got.Lexemes))
			}
			if len(got.Recovered) != tt.wantRecovered {
				t.Errorf("Lex() recovered = %d, want %d", len(got.Recovered), tt.wantRecovered)
			}
			if !reflect.DeepEqual(got.Module, tt.args.m) {
				t.Errorf("Lex() module = %v, want %v", got.Module, tt.args.m)
			}
		})
	}
}

func TestResult_Verify(t *testing.T) {
	r := Lex(context.Background(), Module{"Main", mainModule})
	require.NoError(t, r.Verify())

	tampered := r
	tampered.Lexemes = append([]lexer.Lexeme(nil), r.Lexemes...)
	tampered.Lexemes[0].Value = lexer.Token{Text: "mod"}
	require.ErrorIs(t, tampered.Verify(), ErrRoundTrip)

	failed := Lex(context.Background(), Module{"Tab", "\t"})
	require.ErrorIs(t, failed.Verify(), lexer.ErrUnexpectedInput)
}

func TestVerifyRoundTrip(t *testing.T) {
	lexemes, err := lexer.Scan("ab cd")
	require.NoError(t, err)

	require.NoError(t, VerifyRoundTrip("ab cd", lexemes))

	err = VerifyRoundTrip("ab ce", lexemes)
	require.ErrorIs(t, err, ErrRoundTrip)
	require.Contains(t, err.Error(), "byte 4")
}

func TestVerifySpans(t *testing.T) {
	lexemes, err := lexer.Scan("a\n b")
	require.NoError(t, err)
	require.NoError(t, VerifySpans(lexemes))

	gap := append([]lexer.Lexeme(nil), lexemes...)
	gap[1].Span.Start.Col++
	require.ErrorIs(t, VerifySpans(gap), ErrSpanGap)

	empty := []lexer.Lexeme{lexer.Locate(lexer.Span{
		Start: lexer.Position{Line: 1, Col: 1},
		End:   lexer.Position{Line: 1, Col: 1},
	}, lexer.Item(lexer.Whitespace{}))}
	require.ErrorIs(t, VerifySpans(empty), ErrSpanGap)
}

func TestFormat(t *testing.T) {
	lexemes, err := lexer.Scan("x -1")
	require.NoError(t, err)

	require.Equal(t, ""+
		"1:1-1:2      Token          Token(\"x\")\n"+
		"1:2-1:3      Whitespace     Whitespace(1)\n"+
		"1:3-1:5      NumericLiteral NumericLiteral(\"-1\")\n",
		Format(lexemes))
}

func TestLexModules(t *testing.T) {
	logger := logrus.New()

	modules := make([]Module, 0, 20)
	for index := 0; index < 20; index++ {
		modules = append(modules, Module{Name: fmt.Sprintf("M%02d", index), Source: mainModule})
	}

	results, err := LexModules(context.Background(), modules,
		WithWorkers(4), WithVerify(true), WithBatchLogger(logger), WithBatchDebug(true),
		WithLexerOptions(lexer.WithBufferSize(8)))
	require.NoError(t, err)
	require.Len(t, results, len(modules))

	for index := range results {
		require.Equal(t, modules[index], results[index].Module)
		require.NoError(t, results[index].Err)
		require.Equal(t, mainModule, lexer.Render(results[index].Lexemes))
	}
}

func TestLexModules_errors(t *testing.T) {
	ctx := context.Background()

	_, err := LexModules(ctx, nil)
	require.ErrorIs(t, err, ErrNoModules)

	_, err = LexModules(ctx, []Module{{"A", "a"}, {"A", "b"}})
	require.ErrorIs(t, err, ErrDuplicateMod)

	results, err := LexModules(ctx, []Module{{"A", "a\t"}, {"B", "b"}, {"C", "c\r"}}, WithWorkers(2))
	require.Error(t, err)
	require.ErrorIs(t, err, lexer.ErrUnexpectedInput)
	require.Contains(t, err.Error(), "A: ")
	require.Contains(t, err.Error(), "C: ")

	require.Error(t, results[0].Err)
	require.NoError(t, results[1].Err)
	require.Error(t, results[2].Err)

	var scanErr *lexer.Error
	require.True(t, errors.As(results[2].Err, &scanErr))
	require.Equal(t, lexer.Position{Line: 1, Col: 2}, scanErr.Position)
}

func TestSummarize(t *testing.T) {
	results, err := LexModules(context.Background(), []Module{
		{"b", "x =\n  \n  'y"},
		{"a", "a b"},
	})
	require.NoError(t, err)

	got := Summarize(results)
	require.Len(t, got, 2)
	require.Equal(t, "a: 1 lines, 3 lexemes, Token=2, Whitespace=1", got[0].String())
	require.Equal(t, "b: 3 lines, 5 lexemes, Sigil=1, Token=1, Whitespace=1, Newlines=1, Invalid=1, "+
		"2 spaces on blank lines, 1 recovered", got[1].String())
}
