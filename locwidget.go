// Package locwidget provides a facility directory widget and the build-time
// tooling around it. It filters a static dataset of facility records by
// category, renders the listings with address, services and outbound links,
// and keeps the active filter in the page URL fragment. A companion extractor
// cuts a named region out of a static page so it can be embedded elsewhere.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, http/).
package locwidget
