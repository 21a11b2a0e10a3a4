package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"medibill/internal/bulkupload"
	"medibill/internal/csvexport"
	"medibill/internal/domain"
	"medibill/internal/preview"
)

func prompt(r *bufio.Reader, label string) (string, error) {
	fmt.Print(label)
	line, err := r.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: billctl login <username>")
	}
	password, err := prompt(bufio.NewReader(os.Stdin), "password: ")
	if err != nil {
		return err
	}

	user, token, err := a.auth.Login(ctx, args[0], password)
	if err != nil {
		a.alerts.Error("login failed")
		return err
	}
	if err := a.sessions.SaveUser(user); err != nil {
		return err
	}
	if err := a.sessions.SaveToken(token); err != nil {
		return err
	}
	a.alerts.Success(fmt.Sprintf("signed in as %s (%s)", user.Username, user.Role))
	return nil
}

func (a *app) cmdRegister(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: billctl register <username>")
	}
	r := bufio.NewReader(os.Stdin)
	name, err := prompt(r, "display name: ")
	if err != nil {
		return err
	}
	password, err := prompt(r, "password: ")
	if err != nil {
		return err
	}

	user, err := a.auth.Register(ctx, args[0], password, name)
	if err != nil {
		return err
	}
	a.alerts.Success(fmt.Sprintf("registered %s, you can log in now", user.Username))
	return nil
}

func (a *app) cmdLogout() error {
	if err := a.sessions.SignOut(); err != nil {
		return err
	}
	a.alerts.Info("signed out")
	return nil
}

func (a *app) cmdWhoami() error {
	user, err := a.sessions.User()
	if err != nil {
		return err
	}
	fmt.Printf("%s (%s), user id %d\n", user.Username, user.Role, user.UserID)
	if exp := a.sessions.TokenExpiry(); !exp.IsZero() {
		fmt.Printf("token expires %s\n", exp.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func (a *app) cmdProducts(ctx context.Context) error {
	products, err := a.products.GetProducts(ctx)
	if err != nil {
		return err
	}
	for _, p := range products {
		fmt.Printf("%4d  %-30s HSN %-8s MRP %8.2f  GST %.1f+%.1f%%  %s\n",
			p.ID, p.Name, p.HSN, p.MRP, p.CGSTPercent, p.SGSTPercent, p.Packing)
	}
	return nil
}

func (a *app) cmdProductSearch(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: billctl product-search <text>")
	}
	page, err := a.products.SearchProducts(ctx, domain.SearchRequest{
		SearchText: args[0], Page: 0, Size: a.cfg.Search.PageSize,
	})
	if err != nil {
		return err
	}
	for _, p := range page.Content {
		fmt.Printf("%4d  %-30s MRP %8.2f  %s\n", p.ID, p.Name, p.MRP, p.Packing)
	}
	fmt.Printf("page %d of %d\n", page.Number+1, page.TotalPages)
	return nil
}

func (a *app) cmdBulkUpload(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: billctl bulk-upload <file.xlsx>")
	}

	sheet, err := bulkupload.ParseFile(args[0], true)
	if err != nil {
		return err
	}
	mapping := sheet.AutoMap()
	if issues := sheet.ValidateNumeric(mapping); len(issues) > 0 {
		for _, issue := range issues {
			a.alerts.Warning(fmt.Sprintf("column %s: %d non-numeric values (e.g. %s)",
				issue.Field, issue.InvalidCount, strings.Join(issue.Samples, ", ")))
		}
		return fmt.Errorf("bulk upload aborted: numeric validation failed")
	}

	products, err := sheet.Products(mapping)
	if err != nil {
		return err
	}

	report := bulkupload.NewUploader(a.products, 4).Upload(ctx, products)
	fmt.Printf("uploaded %d/%d products\n", report.Succeeded, report.Total)
	for _, f := range report.Failures {
		fmt.Printf("  row %d (%s): %v\n", f.Index+1, f.Product, f.Err)
	}
	return nil
}

func (a *app) cmdStock(ctx context.Context) error {
	user, err := a.sessions.User()
	if err != nil {
		return err
	}
	batches, err := a.stock.GetStock(ctx, user.UserID)
	if err != nil {
		return err
	}
	printBatches(batches)
	return nil
}

func (a *app) cmdStockSearch(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: billctl stock-search <text>")
	}
	page, err := a.stock.SearchStock(ctx, domain.SearchRequest{
		SearchText: args[0], Page: 0, Size: a.cfg.Search.PageSize,
	})
	if err != nil {
		return err
	}
	printBatches(page.Content)
	fmt.Printf("page %d of %d\n", page.Number+1, page.TotalPages)
	return nil
}

func printBatches(batches []domain.StockBatch) {
	for _, b := range batches {
		fmt.Printf("%-30s batch %-10s exp %-10s qty %5d  MRP %8.2f\n",
			b.Product.Name, b.BatchNo, b.ExpiryDate, b.Quantity, b.Product.MRP)
	}
}

func (a *app) cmdBills(ctx context.Context) error {
	user, err := a.sessions.User()
	if err != nil {
		return err
	}
	bills, err := a.bills.GetBills(ctx, user.UserID)
	if err != nil {
		return err
	}
	for _, b := range bills {
		fmt.Printf("%4d  %-10s %-24s %10.2f\n", b.ID, b.InvoiceDate, b.PurchaserName, b.TotalAmount)
	}
	return nil
}

func (a *app) cmdBillPreview(ctx context.Context, args []string) error {
	user, err := a.sessions.User()
	if err != nil {
		return err
	}

	billID := a.sessions.BillID()
	if len(args) == 1 {
		if billID, err = parseID(args[0]); err != nil {
			return err
		}
	}
	if billID == 0 {
		return fmt.Errorf("no bill id given and none cached from a previous creation")
	}

	renderer := preview.NewRenderer(a.bills, a.details)
	return renderer.Render(ctx, os.Stdout, user.UserID, billID)
}

func (a *app) cmdBillExport(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: billctl bill-export <id> <out.csv>")
	}
	billID, err := parseID(args[0])
	if err != nil {
		return err
	}

	bill, err := a.bills.GetBill(ctx, billID)
	if err != nil {
		return err
	}

	f, err := os.Create(args[1])
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(csvexport.BOM); err != nil {
		return err
	}
	w := csvexport.NewWriter(f)
	if err := w.WriteHeader(); err != nil {
		return err
	}
	if err := w.WriteBill(bill); err != nil {
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	a.alerts.Success(fmt.Sprintf("exported bill %d to %s", billID, args[1]))
	return nil
}
