package handlers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"inventory/internal/models"
	"inventory/internal/services"
)

const exitOption = 0

// MenuHandler drives the inventory through a numbered text menu.
type MenuHandler struct {
	inventory *services.Inventory
	in        *bufio.Reader
	out       io.Writer
	pause     bool
	options   map[int]menuOption
	log       *logrus.Entry
}

type menuOption struct {
	label  string
	handle func() error
}

// NewMenuHandler creates a MenuHandler reading commands from in and writing
// to out. With pause set, every action waits for Enter before the menu is
// shown again.
func NewMenuHandler(inventory *services.Inventory, in io.Reader, out io.Writer, pause bool) *MenuHandler {
	h := &MenuHandler{
		inventory: inventory,
		in:        bufio.NewReader(in),
		out:       out,
		pause:     pause,
		options:   make(map[int]menuOption),
		log:       logrus.WithField("session", uuid.New().String()),
	}
	h.RegisterOptions()
	return h
}

// RegisterOptions registers the menu entries.
func (h *MenuHandler) RegisterOptions() {
	h.options[1] = menuOption{"Add product", h.HandleAddProduct}
	h.options[2] = menuOption{"Find product", h.HandleFindProduct}
	h.options[3] = menuOption{"Update product price", h.HandleUpdatePrice}
	h.options[4] = menuOption{"Update product quantity", h.HandleUpdateQuantity}
	h.options[5] = menuOption{"List all products", h.HandleListProducts}
	h.options[6] = menuOption{"Calculate total inventory value", h.HandleTotalValue}
	h.options[exitOption] = menuOption{"Exit", nil}
}

// Run loops until the exit option is chosen or input is exhausted.
func (h *MenuHandler) Run() error {
	h.log.Info("menu session started")
	defer h.log.Info("menu session ended")

	for {
		h.showMenu()
		line, err := h.prompt("Select an option: ")
		if err != nil {
			return ignoreEOF(err)
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		switch {
		case err != nil:
			renderError(h.out, "Error: you must enter a number.")
		case choice == exitOption:
			fmt.Fprintln(h.out, "Thank you for using the Inventory System!")
			return nil
		default:
			opt, ok := h.options[choice]
			if !ok {
				renderError(h.out, "Invalid option. Please try again.")
				break
			}
			if err := opt.handle(); err != nil {
				return ignoreEOF(err)
			}
		}

		if h.pause {
			if _, err := h.prompt("\nPress Enter to continue..."); err != nil {
				return ignoreEOF(err)
			}
		}
	}
}

// HandleAddProduct reads a name, price and quantity and adds the product.
func (h *MenuHandler) HandleAddProduct() error {
	name, err := h.prompt("Product name: ")
	if err != nil {
		return err
	}
	priceText, err := h.prompt("Product price: ")
	if err != nil {
		return err
	}
	quantityText, err := h.prompt("Product quantity: ")
	if err != nil {
		return err
	}

	product, err := parseProduct(name, priceText, quantityText)
	if err != nil {
		return h.reportValidation("Error adding product", err)
	}

	result, err := h.inventory.Add(product)
	if err != nil {
		return h.reportValidation("Error adding product", err)
	}
	if result == services.Merged {
		renderSuccess(h.out, "Product '%s' already existed. Its quantity has been updated.", name)
		return nil
	}
	renderSuccess(h.out, "Product '%s' added successfully.", name)
	return nil
}

// HandleFindProduct looks a product up by name.
func (h *MenuHandler) HandleFindProduct() error {
	name, err := h.prompt("Name of the product to find: ")
	if err != nil {
		return err
	}
	product, ok := h.inventory.Find(name)
	if !ok {
		fmt.Fprintf(h.out, "No product found with the name '%s'\n", name)
		return nil
	}
	fmt.Fprintln(h.out, "\nProduct found:")
	fmt.Fprintln(h.out, product.String())
	return nil
}

// HandleUpdatePrice changes the price of an existing product.
func (h *MenuHandler) HandleUpdatePrice() error {
	name, ok, err := h.promptExisting()
	if err != nil || !ok {
		return err
	}
	priceText, err := h.prompt("New price: ")
	if err != nil {
		return err
	}
	price, err := models.ParsePrice(priceText)
	if err == nil {
		_, err = h.inventory.UpdatePrice(name, price)
	}
	if err != nil {
		return h.reportValidation("Error updating price", err)
	}
	renderSuccess(h.out, "Price of product '%s' updated successfully.", name)
	return nil
}

// HandleUpdateQuantity changes the quantity of an existing product.
func (h *MenuHandler) HandleUpdateQuantity() error {
	name, ok, err := h.promptExisting()
	if err != nil || !ok {
		return err
	}
	quantityText, err := h.prompt("New quantity: ")
	if err != nil {
		return err
	}
	quantity, err := models.ParseQuantity(quantityText)
	if err == nil {
		_, err = h.inventory.UpdateQuantity(name, quantity)
	}
	if err != nil {
		return h.reportValidation("Error updating quantity", err)
	}
	renderSuccess(h.out, "Quantity of product '%s' updated successfully.", name)
	return nil
}

// HandleListProducts prints every product in insertion order.
func (h *MenuHandler) HandleListProducts() error {
	products := h.inventory.List()
	if len(products) == 0 {
		fmt.Fprintln(h.out, "The inventory is empty.")
		return nil
	}
	renderProducts(h.out, products)
	return nil
}

// HandleTotalValue prints the value of the whole inventory.
func (h *MenuHandler) HandleTotalValue() error {
	fmt.Fprintf(h.out, "\nTotal inventory value: $%.2f\n", h.inventory.TotalValue())
	return nil
}

func (h *MenuHandler) showMenu() {
	keys := make([]int, 0, len(h.options))
	labels := make(map[int]string, len(h.options))
	for k, opt := range h.options {
		keys = append(keys, k)
		labels[k] = opt.label
	}
	// Exit goes last.
	sort.Slice(keys, func(i, j int) bool {
		if keys[i] == exitOption || keys[j] == exitOption {
			return keys[j] == exitOption && keys[i] != exitOption
		}
		return keys[i] < keys[j]
	})
	renderMenu(h.out, keys, labels)
}

// promptExisting asks for a product name and reports when it is unknown.
func (h *MenuHandler) promptExisting() (string, bool, error) {
	name, err := h.prompt("Name of the product to update: ")
	if err != nil {
		return "", false, err
	}
	if _, ok := h.inventory.Find(name); !ok {
		fmt.Fprintf(h.out, "No product found with the name '%s'\n", name)
		return name, false, nil
	}
	return name, true, nil
}

// reportValidation prints user-facing errors and hands back anything else.
func (h *MenuHandler) reportValidation(prefix string, err error) error {
	var verr *models.ValidationError
	if errors.As(err, &verr) || errors.Is(err, services.ErrProductNotFound) {
		h.log.WithError(err).Debug(prefix)
		renderError(h.out, "%s: %v", prefix, err)
		return nil
	}
	h.log.WithError(err).Warn(prefix)
	return fmt.Errorf("%s: %w", strings.ToLower(prefix), err)
}

// prompt writes label and reads one line without its line terminator.
// A final line without a newline is still returned; io.EOF comes only once
// nothing is left.
func (h *MenuHandler) prompt(label string) (string, error) {
	fmt.Fprint(h.out, label)
	line, err := h.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func parseProduct(name, priceText, quantityText string) (*models.Product, error) {
	price, err := models.ParsePrice(priceText)
	if err != nil {
		return nil, err
	}
	quantity, err := models.ParseQuantity(quantityText)
	if err != nil {
		return nil, err
	}
	return models.NewProduct(name, price, quantity)
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
