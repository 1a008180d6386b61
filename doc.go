// Package ghcas stores assets in a GitHub repository branch and serves them
// through raw.githubusercontent.com or the jsDelivr CDN.
//
// Writes go through the contents API with the git blob hash of the payload
// as the sha guard. Assets named by a 32-character MD5 fingerprint are
// recognized later by Sync, which rebuilds a local record store from the
// branch tree.
//
// Basic usage:
//
//	up, _ := ghcas.New(token, "EngiGu", "resources", "images", "img")
//
//	// Name and upload
//	name := ghcas.StorageName(data, "photo.PNG") // <md5>.png
//	out, _ := up.Put(ctx, records, data, name, "photo.PNG")
//	if out.OK() {
//	    fmt.Println(out.URL)
//	}
//
//	// URLs only, no network
//	fmt.Println(up.URL(name))
//
//	// Rebuild records from the branch
//	n, _ := up.Sync(ctx, records, ghcas.ProgressFunc(func(done, total int) {
//	    fmt.Printf("%d/%d\r", done, total)
//	}))
//
// Direct URLs instead of the CDN:
//
//	up, _ := ghcas.New(token, owner, repo, branch, path, ghcas.WithCDN(false))
package ghcas
