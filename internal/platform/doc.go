package platform

// Package platform contains OS integration: reading user-picked image
// files and opening links in the system browser.
