package util

import (
	"math"
	"testing"
)

func TestMax(t *testing.T) {
	if Max(3, 7) != 7 || Max(7, 3) != 7 || Max(0, 0) != 0 {
		t.Error("max returned the wrong value")
	}
}

func TestCalculateFilterSize(t *testing.T) {
	size := CalculateFilterSize(1000, 0.01)
	if size != 9586 {
		t.Errorf("size for 1000 items at 1%% should be 9586, got %v", size)
	}
}

func TestCalculateNumHashes(t *testing.T) {
	if k := CalculateNumHashes(9586, 1000); k != 7 {
		t.Errorf("num hashes should be 7, got %v", k)
	}
	if k := CalculateNumHashes(100, 0); k != 1 {
		t.Errorf("num hashes for zero items should be 1, got %v", k)
	}
}

func TestFalsePositiveRate(t *testing.T) {
	if rate := FalsePositiveRate(64, 3, 0); rate != 0 {
		t.Errorf("empty filter should have rate 0, got %v", rate)
	}
	rate := FalsePositiveRate(9586, 7, 1000)
	if math.Abs(rate-0.01) > 0.001 {
		t.Errorf("rate should be close to 0.01, got %v", rate)
	}
}

func TestFillRatioRate(t *testing.T) {
	if rate := FillRatioRate(64, 3, 6); math.Abs(rate-math.Pow(6.0/64.0, 3)) > 1e-12 {
		t.Errorf("unexpected rate %v", rate)
	}
}

func TestGenerateRandomString(t *testing.T) {
	a := GenerateRandomString(16)
	b := GenerateRandomString(16)
	if len(a) != 16 {
		t.Errorf("length should be 16, got %v", len(a))
	}
	if a == b {
		t.Errorf("two random strings should differ, got %v twice", a)
	}
}
