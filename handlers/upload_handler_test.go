package handlers

import "testing"

func TestUploadFolderFor(t *testing.T) {
	cases := []struct {
		kind string
		want string
	}{
		{"", avatarFolder},
		{"avatar", avatarFolder},
		{"studio_logo", studioLogoFolder},
		{"something_else", avatarFolder},
	}

	for _, tc := range cases {
		if got := uploadFolderFor(tc.kind); got != tc.want {
			t.Errorf("uploadFolderFor(%q) = %q, want %q", tc.kind, got, tc.want)
		}
	}
}
