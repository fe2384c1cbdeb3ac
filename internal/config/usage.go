package config

import "fmt"

// usageTemplate mirrors entropic.c's usage string: flag summary, map file
// grammar, and a table of selected octet values so a map file author does
// not have to go hunting for an ASCII chart.
const usageTemplate = `usage: %s [-h] [-V] [-v verbose] [-c rept_cycle] [-b bit_depth]
	[-B back_history] [-f depth_factor] [-r rec_size] [-k]
	[-m map_file] [-C] [-j] input_file

	-h, --help              print this help message and exit
	-V, --version           print version string and exit
	-v, --verbose N         verbose level (def: 0 == none)

	-c, --report-cycle N    report every N records (def: at end only)
	-b, --bit-depth N       tally depth for each record bit (def: %d)
	-B, --back-history N    xor diffs this many records back (def: %d)
	-f, --depth-factor N    ave slot tally needed for entropy (def: %d)
	-r, --rec-size N        read N octet records (def: line mode)
	-k, --keep-newline      do not discard newlines (not with -r)
	-m, --map-file FILE     octet mask, octet to bit map, bit mask
	-C, --cookie-trim       keep text after 1st = before 1st ; (not with -r)
	-j, --json              emit progress and final reports as JSON

	input_file              file to read records from (- == stdin)

	The map_file syntax:

	# comments start with a # and run to the end of the line
	# blank lines are ignored

	# charmask contains only x's and c's after the =; optional,
	# default is to process every character
	charmask=[xc]+

	# map an octet (two hex digits) to zero or more bits. If no octet
	# line is present, every octet maps to its 8-bit big-endian value.
	# If any octet line is present, unlisted octets map to nothing.
	#   61=01001
	# maps octet 0x61 ('a') to the 5 bits 0,1,0,0,1.
	[0-9a-fA-F][0-9a-fA-F]=[01]*

	# bitmask contains only x's and b's after the =; optional,
	# default is to keep every expanded bit
	bitmask=[xb]+

	Selected ASCII values:

	sp 20   0  30   @  40   P  50   ` + "`" + `  60   p  70
	!  21   1  31   A  41   Q  51   a  61   q  71
	"  22   2  32   B  42   R  52   b  62   r  72
	#  23   3  33   C  43   S  53   c  63   s  73
	$  24   4  34   D  44   T  54   d  64   t  74
	%%  25   5  35   E  45   U  55   e  65   u  75
	&  26   6  36   F  46   V  56   f  66   v  76
	'  27   7  37   G  47   W  57   g  67   w  77
	(  28   8  38   H  48   X  58   h  68   x  78
	)  29   9  39   I  49   Y  59   i  69   y  79
`

// Usage renders the full help text for the given program name.
func Usage(program string) string {
	return fmt.Sprintf(usageTemplate, program, DefaultBitDepth, DefaultBackHistory, DefaultDepthFactor)
}
