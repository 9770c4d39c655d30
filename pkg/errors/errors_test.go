package errors

import (
	stderrors "errors"
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestNewModelError(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		kind     string
		err      error
		wantMsg  string
		hasStack bool
	}{
		{
			name:     "with original error",
			op:       "OLS.Fit",
			kind:     "invalid input",
			err:      fmt.Errorf("test error"),
			wantMsg:  "golm: OLS.Fit: invalid input: test error",
			hasStack: true,
		},
		{
			name:     "without original error",
			op:       "OLS.Predict",
			kind:     "not fitted",
			err:      nil,
			wantMsg:  "golm: OLS.Predict: not fitted",
			hasStack: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewModelError(tt.op, tt.kind, tt.err)

			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// スタックトレースの存在確認
			if tt.hasStack {
				formatted := fmt.Sprintf("%+v", err)
				if !strings.Contains(formatted, "errors_test.go") {
					t.Error("Expected stack trace to contain test file name")
				}
			}

			var modelErr *ModelError
			if !As(err, &modelErr) {
				t.Error("Error should be castable to *ModelError")
			}
		})
	}
}

func TestNewDimensionError(t *testing.T) {
	err := NewDimensionError("Assemble", 3, 2, 1)

	want := "golm: Assemble: dimension mismatch on axis 1 (features). Expected 3, got 2"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var dimErr *DimensionError
	if !As(err, &dimErr) {
		t.Error("Error should be castable to *DimensionError")
	}
}

func TestColumnCountError(t *testing.T) {
	err := NewColumnCountError(1, 3, 2)

	want := "golm: inconsistent number of columns on line 1: expected 3, got 2"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	// センチネルとの比較は cockroachdb/errors と標準ライブラリの両方で成り立つ
	if !Is(err, ErrColumnCountMismatch) {
		t.Error("Expected Is(err, ErrColumnCountMismatch) to be true")
	}
	if !stderrors.Is(err, ErrColumnCountMismatch) {
		t.Error("Expected stdlib errors.Is to match ErrColumnCountMismatch")
	}
	if Is(err, ErrInsufficientRows) {
		t.Error("ColumnCountError must not match ErrInsufficientRows")
	}

	var countErr *ColumnCountError
	if !As(err, &countErr) {
		t.Fatal("Error should be castable to *ColumnCountError")
	}
	if countErr.Expected != 3 || countErr.Got != 2 {
		t.Errorf("unexpected counts: %+v", countErr)
	}
}

func TestInsufficientRowsError(t *testing.T) {
	err := NewInsufficientRowsError(2, 5)

	if !Is(err, ErrInsufficientRows) {
		t.Error("Expected Is(err, ErrInsufficientRows) to be true")
	}
	if !strings.Contains(err.Error(), "2 rows for 5 predictor columns") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestAssemblyAndUnseenColumnErrors(t *testing.T) {
	err := NewAssemblyError("color", "column still holds raw categorical values")
	var asmErr *AssemblyError
	if !As(err, &asmErr) || asmErr.Column != "color" {
		t.Errorf("Error should be castable to *AssemblyError, got %v", err)
	}

	err = NewUnseenColumnError("shape")
	want := "golm: column 'shape' has no learned encoding"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}
}

func TestWarnings(t *testing.T) {
	var got []error
	SetWarningHandler(func(w error) { got = append(got, w) })
	defer SetWarningHandler(func(w error) {})

	Warn(NewTypeMismatchWarning("x", 4, "abc", "numeric"))
	Warn(NewUnknownStrategyWarning("binary"))
	Warn(NewUnseenCategoryWarning("color", "teal"))

	if len(got) != 3 {
		t.Fatalf("expected 3 warnings, got %d", len(got))
	}

	wantMsgs := []string{
		`mismatch in column types: column 'x' is numeric but line 4 holds "abc"`,
		`unknown encoding type "binary", ignoring categories`,
		`column 'color': category "teal" was not seen during training`,
	}
	for i, w := range got {
		if w.Error() != wantMsgs[i] {
			t.Errorf("warning %d = %q, want %q", i, w.Error(), wantMsgs[i])
		}
	}
}

func TestWarnPrefersZerologFunc(t *testing.T) {
	var handled, zerologged int
	SetWarningHandler(func(w error) { handled++ })
	SetZerologWarnFunc(func(w error) { zerologged++ })
	defer func() {
		SetZerologWarnFunc(nil)
		SetWarningHandler(func(w error) {})
	}()

	Warn(NewUnknownStrategyWarning("x"))

	if zerologged != 1 || handled != 0 {
		t.Errorf("zerologged=%d handled=%d, want 1 and 0", zerologged, handled)
	}
}

func TestWrapAndIs(t *testing.T) {
	wrapped := Wrap(ErrEmptyData, "in table.Build")

	if !Is(wrapped, ErrEmptyData) {
		t.Error("Expected Is(wrapped, ErrEmptyData) to be true")
	}

	if !strings.Contains(wrapped.Error(), "in table.Build") {
		t.Error("Expected wrapped error to contain wrapping message")
	}
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrSingularMatrix, "in %s: rank %d of %d", "OLS.Fit", 2, 3)

	if !Is(wrapped, ErrSingularMatrix) {
		t.Error("Expected Is(wrapped, ErrSingularMatrix) to be true")
	}

	expectedMsg := "in OLS.Fit: rank 2 of 3"
	if !strings.Contains(wrapped.Error(), expectedMsg) {
		t.Errorf("Expected wrapped error to contain %q", expectedMsg)
	}
}

func TestCheckNumericalStability(t *testing.T) {
	if err := CheckNumericalStability("log", []float64{1, 2, 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	nan := 0.0
	nan = nan / nan
	err := CheckNumericalStability("log", []float64{1, nan, 3})
	if err == nil {
		t.Fatal("expected an error for NaN input")
	}

	var instab *NumericalInstabilityError
	if !As(err, &instab) {
		t.Fatalf("expected *NumericalInstabilityError, got %T", err)
	}
	if instab.Index != 1 {
		t.Errorf("Index = %d, want 1", instab.Index)
	}
}

func TestCheckScalar(t *testing.T) {
	if err := CheckScalar("chisq", 2.5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inf := math.Inf(1)
	var instab *NumericalInstabilityError
	if err := CheckScalar("chisq", inf); !As(err, &instab) {
		t.Fatalf("expected *NumericalInstabilityError, got %v", err)
	}
}
