// Package errors はプロジェクト全体のエラーハンドリングと警告システムを提供します。
// テーブル構築・カテゴリエンコード・行列組み立て・モデル適合の各段階で発生する
// エラーを構造化された型として表現し、致命的でない不整合は警告として扱います。
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	グローバル警告ハンドリング
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// デフォルトのハンドラは標準エラー出力にログを出す
		log.Printf("golm-warning: %v\n", w)
	}
	// zerologロガー（循環importを避けるため遅延初期化）
	zerologWarnFunc func(warning error)
)

// SetWarningHandler はライブラリ全体の警告ハンドラを設定します。
// TypeMismatchWarning などのカスタム警告の処理方法を制御できます。
//
// 例:
//
//	errors.SetWarningHandler(func(w error) {
//	    // 警告を無視する
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc はzerolog警告関数を設定します（循環importを避けるため）。
// nil を渡すと従来のハンドラに戻ります。
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn は警告を発生させます。
// zerologが設定されている場合は構造化ログとして出力し、そうでなければ従来のハンドラを使用します。
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	データ取り込み時の警告型
//
// ===========================================================================

// TypeMismatchWarning はフィールドの推定型が列の確定済み型と異なる場合の警告です。
// テーブル構築は列の元の型のまま続行されます。
type TypeMismatchWarning struct {
	Column string
	Line   int
	Value  string
	Kind   string // 列の確定済み型
}

func (w *TypeMismatchWarning) Error() string {
	return fmt.Sprintf("mismatch in column types: column '%s' is %s but line %d holds %q", w.Column, w.Kind, w.Line, w.Value)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *TypeMismatchWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("column", w.Column).
		Int("line", w.Line).
		Str("value", w.Value).
		Str("kind", w.Kind).
		Str("type", "TypeMismatchWarning")
}

// NewTypeMismatchWarning は新しいTypeMismatchWarningを作成します。
func NewTypeMismatchWarning(column string, line int, value, kind string) *TypeMismatchWarning {
	return &TypeMismatchWarning{Column: column, Line: line, Value: value, Kind: kind}
}

// UnknownStrategyWarning は未知のエンコード方式が指定された場合の警告です。
// 方式は none として扱われます。
type UnknownStrategyWarning struct {
	Name string
}

func (w *UnknownStrategyWarning) Error() string {
	return fmt.Sprintf("unknown encoding type %q, ignoring categories", w.Name)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *UnknownStrategyWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("name", w.Name).
		Str("type", "UnknownStrategyWarning")
}

// NewUnknownStrategyWarning は新しいUnknownStrategyWarningを作成します。
func NewUnknownStrategyWarning(name string) *UnknownStrategyWarning {
	return &UnknownStrategyWarning{Name: name}
}

// UnseenCategoryWarning は学習時に存在しなかったカテゴリが検証データに現れた場合の警告です。
type UnseenCategoryWarning struct {
	Column   string
	Category string
}

func (w *UnseenCategoryWarning) Error() string {
	return fmt.Sprintf("column '%s': category %q was not seen during training", w.Column, w.Category)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *UnseenCategoryWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("column", w.Column).
		Str("category", w.Category).
		Str("type", "UnseenCategoryWarning")
}

// NewUnseenCategoryWarning は新しいUnseenCategoryWarningを作成します。
func NewUnseenCategoryWarning(column, category string) *UnseenCategoryWarning {
	return &UnseenCategoryWarning{Column: column, Category: category}
}

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// NotFittedError はモデルが未学習の状態で `Predict` などを呼び出した場合のエラーです。
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("golm: %s: this model is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError は新しいNotFittedErrorを作成し、スタックトレースを付与します。
func NewNotFittedError(modelName, method string) error {
	err := &NotFittedError{ModelName: modelName, Method: method}
	return errors.WithStack(err)
}

// DimensionError は入力データの次元が期待値と異なる場合のエラーです。
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *DimensionError) Error() string {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("golm: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", axisName).
		Str("type", "DimensionError")
}

// NewDimensionError は新しいDimensionErrorを作成し、スタックトレースを付与します。
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// ValidationError は入力パラメータの検証に失敗した場合のエラーです。
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("golm: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError は新しいValidationErrorを作成し、スタックトレースを付与します。
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// ValueError は引数の値が不適切または不正な場合に発生するエラーです。
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("golm: %s: %s", e.Op, e.Message)
}

// NewValueError は新しいValueErrorを作成し、スタックトレースを付与します。
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ModelError はモデル適合に関する一般的なエラーです。
type ModelError struct {
	Op   string
	Kind string
	Err  error
}

func (e *ModelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("golm: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("golm: %s: %s", e.Op, e.Kind)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// NewModelError は新しいModelErrorを作成し、スタックトレースを付与します。
func NewModelError(op, kind string, err error) error {
	modelErr := &ModelError{Op: op, Kind: kind, Err: err}
	return errors.WithStack(modelErr)
}

// ===========================================================================
//
//	テーブル構築・行列組み立てのエラー型
//
// ===========================================================================

// ColumnCountError はデータ行の列数がヘッダーと一致しない場合のエラーです。
// errors.Is(err, ErrColumnCountMismatch) が成り立ちます。
type ColumnCountError struct {
	Line     int // 入力中の行番号（ヘッダーが 1）
	Expected int
	Got      int
}

func (e *ColumnCountError) Error() string {
	return fmt.Sprintf("golm: inconsistent number of columns on line %d: expected %d, got %d", e.Line, e.Expected, e.Got)
}

func (e *ColumnCountError) Unwrap() error {
	return ErrColumnCountMismatch
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ColumnCountError) MarshalZerologObject(event *zerolog.Event) {
	event.Int("line", e.Line).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Str("type", "ColumnCountError")
}

// NewColumnCountError は新しいColumnCountErrorを作成し、スタックトレースを付与します。
func NewColumnCountError(line, expected, got int) error {
	return errors.WithStack(&ColumnCountError{Line: line, Expected: expected, Got: got})
}

// InsufficientRowsError はエンコード後の説明変数の数が行数を上回る場合のエラーです。
// 最小二乗解を求める前に必ず検出されなければなりません。
type InsufficientRowsError struct {
	Rows    int
	Columns int
}

func (e *InsufficientRowsError) Error() string {
	return fmt.Sprintf("golm: insufficient rows: %d rows for %d predictor columns", e.Rows, e.Columns)
}

func (e *InsufficientRowsError) Unwrap() error {
	return ErrInsufficientRows
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *InsufficientRowsError) MarshalZerologObject(event *zerolog.Event) {
	event.Int("rows", e.Rows).
		Int("columns", e.Columns).
		Str("type", "InsufficientRowsError")
}

// NewInsufficientRowsError は新しいInsufficientRowsErrorを作成し、スタックトレースを付与します。
func NewInsufficientRowsError(rows, columns int) error {
	return errors.WithStack(&InsufficientRowsError{Rows: rows, Columns: columns})
}

// AssemblyError は説明変数の列に数値が存在せず行列へ組み立てられない場合のエラーです。
type AssemblyError struct {
	Column string
	Reason string
}

func (e *AssemblyError) Error() string {
	return fmt.Sprintf("golm: cannot assemble column '%s': %s", e.Column, e.Reason)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *AssemblyError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("column", e.Column).
		Str("reason", e.Reason).
		Str("type", "AssemblyError")
}

// NewAssemblyError は新しいAssemblyErrorを作成し、スタックトレースを付与します。
func NewAssemblyError(column, reason string) error {
	return errors.WithStack(&AssemblyError{Column: column, Reason: reason})
}

// UnseenColumnError は学習時のエンコード状態に存在しないカテゴリ列を再適用しようとした場合のエラーです。
type UnseenColumnError struct {
	Column string
}

func (e *UnseenColumnError) Error() string {
	return fmt.Sprintf("golm: column '%s' has no learned encoding", e.Column)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *UnseenColumnError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("column", e.Column).
		Str("type", "UnseenColumnError")
}

// NewUnseenColumnError は新しいUnseenColumnErrorを作成し、スタックトレースを付与します。
func NewUnseenColumnError(column string) error {
	return errors.WithStack(&UnseenColumnError{Column: column})
}

// NumericalInstabilityError は数値計算が不安定になった場合のエラーです。
// 応答変数の対数変換で NaN や Inf が生じた場合などに使われます。
type NumericalInstabilityError struct {
	Operation string
	Values    []float64
	Index     int // 最初に問題が見つかった位置（不明な場合は -1）
}

func (e *NumericalInstabilityError) Error() string {
	valStr := ""
	for i, v := range e.Values {
		if i > 0 {
			valStr += ", "
		}
		if i >= 5 {
			valStr += "..."
			break
		}
		valStr += fmt.Sprintf("%.6g", v)
	}
	return fmt.Sprintf("golm: numerical instability detected in %s at index %d. Values: [%s]",
		e.Operation, e.Index, valStr)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *NumericalInstabilityError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Operation).
		Int("index", e.Index).
		Floats64("values", e.Values).
		Str("type", "NumericalInstabilityError")
}

// NewNumericalInstabilityError は新しいNumericalInstabilityErrorを作成します。
func NewNumericalInstabilityError(operation string, values []float64, index int) error {
	err := &NumericalInstabilityError{
		Operation: operation,
		Values:    values,
		Index:     index,
	}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// ===========================================================================
//
//	共通エラー変数
//
// ===========================================================================

var (
	// ErrEmptyData は空のデータが渡された場合のエラーです。
	ErrEmptyData = New("empty data")

	// ErrSingularMatrix は特異行列の場合のエラーです。
	ErrSingularMatrix = New("singular matrix")

	// ErrColumnCountMismatch はヘッダーとデータ行の列数が一致しない場合のエラーです。
	ErrColumnCountMismatch = New("inconsistent number of columns")

	// ErrInsufficientRows は行数が説明変数の数に満たない場合のエラーです。
	ErrInsufficientRows = New("insufficient rows")

	// ErrCategoricalResponse は応答変数の列がカテゴリ型だった場合のエラーです。
	ErrCategoricalResponse = New("response column must be numeric")

	// ErrDuplicateColumn はヘッダーに同じ列名が複数ある場合のエラーです。
	ErrDuplicateColumn = New("duplicate column name")
)
