package model

import (
	"encoding/gob"
	"io"
	"os"

	"github.com/YuminosukeSato/golm/pkg/errors"
)

// SaveModel は値を gob 形式でファイルに保存する
//
// 使用例:
//
//	err := model.SaveModel(state, "run.state")
func SaveModel(v interface{}, filename string) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", filename)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "failed to close %s", filename)
		}
	}()

	return SaveModelToWriter(v, file)
}

// LoadModel はファイルから gob 形式の値を読み込む
//
//	var state preprocessing.EncodingState
//	err := model.LoadModel(&state, "run.state")
func LoadModel(v interface{}, filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", filename)
	}
	defer file.Close()

	return LoadModelFromReader(v, file)
}

// SaveModelToWriter は値を io.Writer に gob 形式で保存する
func SaveModelToWriter(v interface{}, w io.Writer) error {
	if err := gob.NewEncoder(w).Encode(v); err != nil {
		return errors.Wrap(err, "failed to encode model")
	}
	return nil
}

// LoadModelFromReader は io.Reader から gob 形式の値を読み込む
func LoadModelFromReader(v interface{}, r io.Reader) error {
	if err := gob.NewDecoder(r).Decode(v); err != nil {
		return errors.Wrap(err, "failed to decode model")
	}
	return nil
}
