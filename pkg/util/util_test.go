package util

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestReadLine(t *testing.T) {
	br := bufio.NewReader(strings.NewReader("first\r\nsecond\nlast"))

	for _, want := range []string{"first", "second", "last"} {
		got, err := ReadLine(br)
		if err != nil {
			t.Fatalf("ReadLine: %v", err)
		}
		if got != want {
			t.Errorf("ReadLine = %q, want %q", got, want)
		}
	}

	if _, err := ReadLine(br); !errors.Is(err, io.EOF) {
		t.Fatalf("want io.EOF after last line, got %v", err)
	}
}

func TestWrapErrorfCode(t *testing.T) {
	orig := errors.New("boom")
	err := WrapErrorf(orig, ErrBadParamInput, "line %d: bad token", 7)

	var domainErr *Error
	if !errors.As(err, &domainErr) {
		t.Fatal("wrapped error must be a *Error")
	}
	if domainErr.Code() != ErrBadParamInput {
		t.Errorf("Code = %v, want ErrBadParamInput", domainErr.Code())
	}
	if !errors.Is(err, orig) {
		t.Error("wrapped error must unwrap to the original")
	}
	if err.Error() != "line 7: bad token" {
		t.Errorf("Error = %q", err.Error())
	}
}

func TestReverseG(t *testing.T) {
	arr := []int{1, 2, 3, 4}
	rev := ReverseG(arr)

	want := []int{4, 3, 2, 1}
	for i := range want {
		if rev[i] != want[i] {
			t.Fatalf("ReverseG = %v, want %v", rev, want)
		}
	}
	if arr[0] != 1 {
		t.Fatal("ReverseG must not mutate its input")
	}
}

func TestStringToInt(t *testing.T) {
	if v, err := StringToInt("42"); err != nil || v != 42 {
		t.Fatalf("StringToInt(42) = %d, %v", v, err)
	}
	if _, err := StringToInt("4.2"); err == nil {
		t.Fatal("StringToInt must reject non-integers")
	}
}
