package steg

import (
	"fmt"
	"image"
	"math"
)

// AnalysisReport summarizes how much a stego image deviates from its
// cover. Values are computed over every channel of every pixel, alpha
// included.
type AnalysisReport struct {
	MSE             float64 // mean squared error per channel
	PSNR            float64 // peak signal-to-noise ratio in dB; +Inf for identical images
	ChangedChannels int64
	TotalChannels   int64
	MaxDelta        int // largest per-channel difference; 1 for a pure LSB embed
}

func (r *AnalysisReport) String() string {
	return fmt.Sprintf("MSE=%.6f PSNR=%.2fdB changed=%d/%d maxDelta=%d",
		r.MSE, r.PSNR, r.ChangedChannels, r.TotalChannels, r.MaxDelta)
}

// Analyze compares a cover image against its stego counterpart. The two
// must share dimensions.
func Analyze(cover, stego image.Image) (*AnalysisReport, error) {
	cb, sb := cover.Bounds(), stego.Bounds()
	if cb.Dx() != sb.Dx() || cb.Dy() != sb.Dy() {
		return nil, fmt.Errorf("dimension mismatch: cover is %dx%d, stego is %dx%d",
			cb.Dx(), cb.Dy(), sb.Dx(), sb.Dy())
	}

	cp, err := normalize(cover)
	if err != nil {
		return nil, err
	}
	sp, err := normalize(stego)
	if err != nil {
		return nil, err
	}

	report := &AnalysisReport{TotalChannels: int64(len(cp.Pix))}
	var sqSum float64
	for i := range cp.Pix {
		d := int(cp.Pix[i]) - int(sp.Pix[i])
		if d == 0 {
			continue
		}
		if d < 0 {
			d = -d
		}
		report.ChangedChannels++
		if d > report.MaxDelta {
			report.MaxDelta = d
		}
		sqSum += float64(d) * float64(d)
	}

	if report.TotalChannels > 0 {
		report.MSE = sqSum / float64(report.TotalChannels)
	}
	if report.MSE == 0 {
		report.PSNR = math.Inf(1)
	} else {
		report.PSNR = 20*math.Log10(255) - 10*math.Log10(report.MSE)
	}
	return report, nil
}
