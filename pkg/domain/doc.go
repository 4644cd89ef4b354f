/*
Package domain contains the core domain models shared by the tbx scanners and reporters.

It defines what a classified Toolbox line looks like and the conditions the tools
can end in. The package is kept pure and free of I/O so that every other package
(scanning, counting, rendering) can depend on it without cycles.

# Key Entities

  - MarkerLine: A line that starts with a backslash marker, split into marker and content.
  - Tier: Not a type of its own. A tier is selected by comparing MarkerLine.Marker.
  - HeaderMarker: The structural "_sh" header marker excluded from marker inventories.
*/
package domain
