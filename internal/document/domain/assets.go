package domain

import "strings"

// ResolveSignature normalizes a stored signature reference into a fully
// qualified SignatureImage. Relative paths are joined with the asset
// base URL; the renderer never sees a reference it cannot resolve on its
// own. An empty reference yields nil, which renders as the explicit
// not-signed placeholder.
func ResolveSignature(assetBaseURL, ref string) *SignatureImage {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil
	}
	if strings.HasPrefix(ref, "data:") {
		return &SignatureImage{DataURI: ref}
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return &SignatureImage{URL: ref}
	}
	if assetBaseURL == "" {
		// No base to qualify against; dropping the reference keeps the
		// renderer sandbox free of unresolvable paths.
		return nil
	}
	return &SignatureImage{URL: assetBaseURL + "/" + strings.TrimLeft(ref, "/")}
}
