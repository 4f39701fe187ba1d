package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	sharedModels "github.com/IvanChernomyrdin/go-aquamate/internal/shared/models"
	"github.com/IvanChernomyrdin/go-aquamate/internal/shared/utils"
)

const timeLayout = "2006-01-02 15:04"

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func fmtTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(timeLayout)
}

func printUser(w io.Writer, u sharedModels.User) {
	fmt.Fprintf(w, "user_id:   %d\n", u.ID)
	fmt.Fprintf(w, "user_name: %s\n", u.Name)
	fmt.Fprintf(w, "bio:       %s\n", utils.Deref(u.Bio, "-"))
	fmt.Fprintf(w, "X:         %s\n", utils.Deref(u.X, "-"))
	fmt.Fprintf(w, "photo_url: %s\n", utils.Deref(u.PhotoURL, "-"))
}

func printRecords(w io.Writer, recs []sharedModels.WaterRecord) {
	if len(recs) == 0 {
		fmt.Fprintln(w, "no water records")
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tDATE\tTYPE\tML\tLAT\tLON\tCOMMENT")
	total := 0
	for _, r := range recs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%.4f\t%.4f\t%s\n",
			r.ID, fmtTime(r.WaterDate), utils.Deref(r.WaterType, "-"), r.WaterAmount, r.Lat, r.Lon, utils.Deref(r.Comment, ""))
		total += r.WaterAmount
	}
	tw.Flush()
	fmt.Fprintf(w, "total: %d ml\n", total)
}

func printRecord(w io.Writer, r sharedModels.WaterRecord) {
	printRecords(w, []sharedModels.WaterRecord{r})
}

func printStamps(w io.Writer, list []sharedModels.Stamp) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tSTAMP\tMESSAGE")
	for _, s := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", s.ID, s.ImageURL, utils.Deref(s.Message, ""))
	}
	tw.Flush()
}

func printInbox(w io.Writer, list []sharedModels.ReceivedStamp) {
	if len(list) == 0 {
		fmt.Fprintln(w, "no stamps yet")
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tFROM\tSTAMP\tMESSAGE\tREPLIED\tAT")
	for _, s := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%t\t%s\n",
			s.ID, s.SenderName, s.StampImageURL, utils.Deref(s.StampMessage, ""), s.Replied, fmtTime(s.CreatedAt))
	}
	tw.Flush()
}

func printSent(w io.Writer, list []sharedModels.UserStamp) {
	if len(list) == 0 {
		fmt.Fprintln(w, "no stamps sent")
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tTO\tSTAMP_ID\tREPLIED\tAT")
	for _, s := range list {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%t\t%s\n", s.ID, s.ReceiverID, s.StampID, s.Replied, fmtTime(s.CreatedAt))
	}
	tw.Flush()
}

func printNearby(w io.Writer, list []sharedModels.NearbyUser) {
	tw := newTable(w)
	fmt.Fprintln(tw, "USER_ID\tLAT\tLON")
	for _, n := range list {
		fmt.Fprintf(tw, "%d\t%.4f\t%.4f\n", n.UserID, n.Lat, n.Lon)
	}
	tw.Flush()
}
