// Package catalog loads the Viavi test declaration file.
//
// The file lists the campaigns that can be run on the Viavi testbed:
//
//	tests:
//	  - campaign_filename: "C:\\ProgramData\\VIAVI\\...\\campaign.xml"
//	    id: "1UE ideal UDP bidirectional"
//	    description: "1 UE, ideal channel, bidirectional UDP traffic"
//
// Every entry needs campaign_filename and id; description is optional and
// defaults to the empty string. Test ids must be unique within the file.
package catalog
