package table

import (
	"bufio"
	"io"

	"github.com/YuminosukeSato/golm/pkg/errors"
)

// maxLineBytes は1行あたりの最大バイト数
const maxLineBytes = 16 * 1024 * 1024

// ReadLines は r から全ての行を読み込む
//
// 行末の "\n" と直前の "\r" は取り除かれる。入力の最後の改行は空行を生まない。
// 入力が空なら長さ0のスライスを、改行1つだけなら空文字列1つを返す。
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lines := make([]string, 0, 64)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read failed after %d lines", len(lines))
	}
	return lines, nil
}
