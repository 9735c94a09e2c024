package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/codegangsta/cli"

	webpconv "github.com/TweekFawkes/runner-webptopngandjpeg"
)

func main() {
	app := cli.NewApp()
	app.Version = "0.1.0"
	app.Name = "webpconv"
	app.Usage = "A command-line tool for converting WebP images to PNG and JPEG."
	app.UsageText = "1) webpconv [options] -f my_image.webp\n" +
		/*      */ "   2) webpconv [options] my_image.webp"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "filename,f",
			Usage: "`FILENAME` of the WebP image inside the inputs folder, e.g. my_image.webp. A trailing .webp is stripped from the output names.",
		},
		cli.IntFlag{
			Name:  "quality,q",
			Usage: "JPEG `QUALITY` between 1 and 100.",
			Value: webpconv.DefaultQuality,
		},
		cli.StringFlag{
			Name:  "fit",
			Usage: "`FIT` = 1600,1200 scales the image down to fit 1600x1200 pixels before encoding.",
		},
	}
	app.Action = func(c *cli.Context) {
		filename := c.String("filename")
		if filename == "" {
			filename = c.Args().First()
		}
		if filename == "" {
			exit("a filename is required", 1)
		}

		quality := c.Int("quality")
		if quality < 1 || quality > 100 {
			exit("quality must be between 1 and 100", 1)
		}

		opts := []webpconv.Option{webpconv.WithQuality(quality)}
		if c.IsSet("fit") {
			parts := strings.Split(c.String("fit"), ",")
			if len(parts) != 2 {
				exit("fit option must be comma separated", 1)
			}
			width, _ := strconv.Atoi(strings.Trim(parts[0], " "))
			height, _ := strconv.Atoi(strings.Trim(parts[1], " "))
			if width <= 0 || height <= 0 {
				exit("fit dimensions must be positive", 1)
			}
			opts = append(opts, webpconv.WithFit(uint(width), uint(height)))
		}

		fmt.Printf("Processing %q (quality: %d)...\n", filename, quality)
		outcome, err := webpconv.NewConverter(opts...).Convert(filename)
		if err != nil {
			exit(err.Error(), 1)
		}
		report("PNG", outcome.PNGPath, outcome.PNGErr)
		report("JPEG", outcome.JPEGPath, outcome.JPEGErr)
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func report(format, path string, err error) {
	if err != nil {
		fmt.Printf(" !! %s failed: %v\n", format, err)
		return
	}
	fmt.Printf(" -> %s written to %s\n", format, path)
}

func exit(msg string, code int) {
	fmt.Println(msg)
	os.Exit(code)
}
