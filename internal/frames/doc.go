// Package frames reconstructs the configuration frame address space of a
// Series-7 device.
//
// # Frame Address Layout
//
//	[31:26] reserved (zero)
//	[25:23] block type: 0 CLB_IO_CLK, 1 BLOCK_RAM, 2 CFG_CLB
//	[22]    half: 0 top, 1 bottom
//	[21:17] row
//	[16:7]  column
//	[6:0]   minor frame within the column
//
// # Device Descriptors
//
// Frame counts come from the prjxray database, one part.json per part:
//
//	<database>/<family>/<part>/part.json
//
// The descriptor nests half -> row -> configuration bus -> column -> frame
// count. It is decoded into a typed tree (Part) and walked once, emitting
// frame_count addresses per column. The resulting list is sorted ascending
// by address, which is the order in which frames appear in the FDRI payload.
//
// # Usage Example
//
//	db, err := frames.OpenDatabase("/opt/prjxray-db", logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	list, err := db.BuildFrameList("xc7a35tcpg236-1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(list), list[0].Hex)
//
// # Family Lookup
//
// Part names are mapped to families through an embedded catalog
// (catalog/families.yaml). A part that matches no family prefix fails with
// UnsupportedDeviceError before any descriptor is opened.
package frames
