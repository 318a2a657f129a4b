package verdict

import "testing"

func TestCountPressIndicators(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{
			name: "district notice",
			text: "Office of the District Collector, Madurai. Relief of Rs. 5,000 will be " +
				"disbursed from 10.30 a.m. on 15.03.2025. Contact: 0452-2531380.",
			want: 6,
		},
		{
			name: "plain claim",
			text: "Schools in Madurai were closed today due to heavy rain",
			want: 0,
		},
		{
			name: "currency alone",
			text: "The scheme pays Rs. 2,000 per month to beneficiaries",
			want: 1,
		},
		{
			name: "designation and date",
			text: "The Collector announced the scheme on 01.02.2025",
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountPressIndicators(tt.text); got != tt.want {
				t.Errorf("CountPressIndicators = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLikelyPressRelease(t *testing.T) {
	notice := "O/o the Tahsildar, Usilampatti. Compensation of Rs. 10,000 sanctioned on 12.01.2025. Phone 04552-252001."
	if !LikelyPressRelease(notice) {
		t.Error("formal notice with several indicators should be flagged")
	}
	if LikelyPressRelease("The bridge collapsed yesterday evening") {
		t.Error("ordinary claim text should not be flagged")
	}
}
