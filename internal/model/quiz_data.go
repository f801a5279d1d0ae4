package model

// The static question banks below mirror the published course material.
// Question text and choices are served verbatim; only the correct
// answers stay server-side.

var FoundationQuiz = Quiz{
	Topic:            "Machine Learning",
	Level:            LevelFoundation,
	TotalQuestion:    20,
	PerQuestionScore: 5,
	Questions: []Question{
		{
			Question:      "What is the first step in getting started with machine learning?",
			Choices:       []string{"Collecting data", "Defining goals", "Building models", "Evaluating results"},
			Type:          "MCQs",
			CorrectAnswer: "Defining goals",
		},
		{
			Question:      "Which step comes first in the machine learning process?",
			Choices:       []string{"Model selection", "Data collection and preparation", "Model training and evaluation", "Feature engineering"},
			Type:          "MCQs",
			CorrectAnswer: "Data collection and preparation",
		},
		{
			Question:      "Probability theory is essential in machine learning for:",
			Choices:       []string{"Data preprocessing", "Model evaluation", "Feature engineering", "Handling uncertainty and randomness"},
			Type:          "MCQs",
			CorrectAnswer: "Handling uncertainty and randomness",
		},
		{
			Question:      "What does hypothesis testing involve in statistical methods?",
			Choices:       []string{"Estimating parameters of a distribution", "Comparing sample means or proportions", "Constructing confidence intervals", "Performing feature selection"},
			Type:          "MCQs",
			CorrectAnswer: "Comparing sample means or proportions",
		},
		{
			Question:      "Which mathematical concept is fundamental to understanding vector operations in machine learning?",
			Choices:       []string{"Scalars", "Matrices", "Vectors", "Eigenvalues"},
			Type:          "MCQs",
			CorrectAnswer: "Vectors",
		},
		{
			Question:      "What is the primary goal of optimization in machine learning?",
			Choices:       []string{"Maximizing accuracy", "Minimizing loss or error", "Maximizing interpretability", "Minimizing computational complexity"},
			Type:          "MCQs",
			CorrectAnswer: "Minimizing loss or error",
		},
		{
			Question:      "In calculus, what does the derivative of a function represent?",
			Choices:       []string{"The slope of the tangent line", "The area under the curve", "The limit of the function", "The integral of the function"},
			Type:          "MCQs",
			CorrectAnswer: "The slope of the tangent line",
		},
		{
			Question:      "What comes after defining goals in the machine learning process?",
			Choices:       []string{"Collecting data", "Model selection", "Exploratory data analysis", "Model deployment"},
			Type:          "MCQs",
			CorrectAnswer: "Collecting data",
		},
		{
			Question:      "What is a key task in the data collection and preparation step?",
			Choices:       []string{"Model deployment", "Data visualization", "Model training", "Feature selection"},
			Type:          "MCQs",
			CorrectAnswer: "Data visualization",
		},
		{
			Question:      "What is the probability of an event that is certain to happen?",
			Choices:       []string{"0", "1", "0.5", "-1"},
			Type:          "MCQs",
			CorrectAnswer: "1",
		},
		{
			Question:      "Which statistical measure describes the spread or dispersion of data points?",
			Choices:       []string{"Mean", "Median", "Variance", "Mode"},
			Type:          "MCQs",
			CorrectAnswer: "Variance",
		},
		{
			Question:      "Which operation involves finding the dot product of two vectors?",
			Choices:       []string{"Matrix multiplication", "Matrix addition", "Scalar multiplication", "Cross product"},
			Type:          "MCQs",
			CorrectAnswer: "Cross product",
		},
		{
			Question:      "What does the learning rate control in optimization algorithms?",
			Choices:       []string{"The speed of convergence", "The size of the dataset", "The number of iterations", "The complexity of the model"},
			Type:          "MCQs",
			CorrectAnswer: "The speed of convergence",
		},
		{
			Question:      "What does the integral of a function represent geometrically?",
			Choices:       []string{"The slope of the tangent line", "The area under the curve", "The limit of the function", "The derivative of the function"},
			Type:          "MCQs",
			CorrectAnswer: "The area under the curve",
		},
		{
			Question:      "Which step involves understanding the problem and defining objectives in machine learning?",
			Choices:       []string{"Model deployment", "Data collection and preparation", "Model training and evaluation", "Defining goals"},
			Type:          "MCQs",
			CorrectAnswer: "Defining goals",
		},
		{
			Question:      "What is a key task in the model training and evaluation step?",
			Choices:       []string{"Data visualization", "Hyperparameter tuning", "Feature selection", "Data preprocessing"},
			Type:          "MCQs",
			CorrectAnswer: "Hyperparameter tuning",
		},
		{
			Question:      "What is the probability of the complement of an event?",
			Choices:       []string{"The probability of the event itself", "0", "1", "The difference between 1 and the probability of the event"},
			Type:          "MCQs",
			CorrectAnswer: "The difference between 1 and the probability of the event",
		},
		{
			Question:      "Which statistical measure is robust to outliers?",
			Choices:       []string{"Mean", "Median", "Mode", "Standard deviation"},
			Type:          "MCQs",
			CorrectAnswer: "Median",
		},
		{
			Question:      "What is the determinant of an identity matrix?",
			Choices:       []string{"0", "1", "-1", "It varies depending on the size of the matrix"},
			Type:          "MCQs",
			CorrectAnswer: "1",
		},
		{
			Question:      "What is the objective of gradient descent optimization?",
			Choices:       []string{"Maximizing the cost function", "Minimizing the cost function", "Finding the global maximum", "Balancing the bias-variance tradeoff"},
			Type:          "MCQs",
			CorrectAnswer: "Minimizing the cost function",
		},
	},
}

var BeginnerQuiz = Quiz{
	Topic:            "Machine Learning",
	Level:            LevelBeginner,
	TotalQuestion:    20,
	PerQuestionScore: 5,
	Questions: []Question{
		{
			Question:      "Which of the following is a valid Python variable name?",
			Choices:       []string{"1variable_name", "variableName", "variable name", "variable-name"},
			Type:          "MCQs",
			CorrectAnswer: "variableName",
		},
		{
			Question:      "Which machine learning algorithm is used for classification tasks and works by finding the best linear decision boundary between classes?",
			Choices:       []string{"K-means clustering", "Linear regression", "Decision trees", "Support Vector Machines (SVM)"},
			Type:          "MCQs",
			CorrectAnswer: "Support Vector Machines (SVM)",
		},
		{
			Question:      "Which of the following is a popular open-source software for machine learning and data mining?",
			Choices:       []string{"Weka", "TensorFlow", "PyTorch", "scikit-learn"},
			Type:          "MCQs",
			CorrectAnswer: "Weka",
		},
		{
			Question:      "Which Python library provides tools for data mining and data analysis, including various machine learning algorithms?",
			Choices:       []string{"NumPy", "Pandas", "Matplotlib", "scikit-learn"},
			Type:          "MCQs",
			CorrectAnswer: "scikit-learn",
		},
		{
			Question:      "Which R package provides a unified interface for various machine learning algorithms and facilitates model training, testing, and evaluation?",
			Choices:       []string{"ggplot2", "dplyr", "caret", "tidyr"},
			Type:          "MCQs",
			CorrectAnswer: "caret",
		},
		{
			Question:      "What is the primary objective of time series forecasting?",
			Choices:       []string{"Predicting future events based on historical data", "Classifying data into categories", "Clustering similar data points", "Summarizing data distribution"},
			Type:          "MCQs",
			CorrectAnswer: "Predicting future events based on historical data",
		},
		{
			Question:      "Which of the following is a common step in data preparation?",
			Choices:       []string{"Model training", "Model deployment", "Data cleaning", "Model evaluation"},
			Type:          "MCQs",
			CorrectAnswer: "Data cleaning",
		},
		{
			Question:      "What does the len() function do in Python?",
			Choices:       []string{"Calculates logarithm", "Computes the length of a string or list", "Returns the maximum value in a list", "Rounds a floating-point number"},
			Type:          "MCQs",
			CorrectAnswer: "Computes the length of a string or list",
		},
		{
			Question:      "Which algorithm is used for regression tasks and predicts continuous numeric values?",
			Choices:       []string{"Decision trees", "K-nearest neighbors (KNN)", "Logistic regression", "Random forests"},
			Type:          "MCQs",
			CorrectAnswer: "Decision trees",
		},
		{
			Question:      "What is the main advantage of using Weka for machine learning tasks?",
			Choices:       []string{"It supports only a limited number of algorithms", "It requires advanced programming skills", "It provides a user-friendly graphical interface", "It is primarily used for deep learning"},
			Type:          "MCQs",
			CorrectAnswer: "It provides a user-friendly graphical interface",
		},
		{
			Question:      "Which scikit-learn module is used for model evaluation and selection?",
			Choices:       []string{"sklearn.preprocessing", "sklearn.feature_extraction", "sklearn.model_selection", "sklearn.metrics"},
			Type:          "MCQs",
			CorrectAnswer: "sklearn.model_selection",
		},
		{
			Question:      "Which function is used to train a machine learning model in the caret package?",
			Choices:       []string{"fit()", "train()", "predict()", "evaluate()"},
			Type:          "MCQs",
			CorrectAnswer: "train()",
		},
		{
			Question:      "What is seasonality in time series data?",
			Choices:       []string{"The overall trend of the data", "The daily fluctuations in data", "The repetitive pattern at fixed intervals", "The random noise in data"},
			Type:          "MCQs",
			CorrectAnswer: "The repetitive pattern at fixed intervals",
		},
		{
			Question:      "What is one way to handle missing values in a dataset?",
			Choices:       []string{"Remove the entire row with missing values", "Replace missing values with the mean of the column", "Replace missing values with the mode of the column", "Ignore missing values during analysis"},
			Type:          "MCQs",
			CorrectAnswer: "Replace missing values with the mean of the column",
		},
		{
			Question:      "What does the sorted() function do in Python?",
			Choices:       []string{"Removes duplicates from a list", "Sorts a list in ascending order", "Returns the sum of a list", "Reverses the order of a list"},
			Type:          "MCQs",
			CorrectAnswer: "Sorts a list in ascending order",
		},
		{
			Question:      "Which algorithm is suitable for handling non-linear relationships between features and target variables?",
			Choices:       []string{"Linear regression", "Decision trees", "Logistic regression", "K-means clustering"},
			Type:          "MCQs",
			CorrectAnswer: "Decision trees",
		},
		{
			Question:      "Which file format is commonly used to import datasets into Weka?",
			Choices:       []string{".csv", ".txt", ".xls", ".json"},
			Type:          "MCQs",
			CorrectAnswer: ".csv",
		},
		{
			Question:      "Which scikit-learn module is used for feature extraction and preprocessing?",
			Choices:       []string{"sklearn.preprocessing", "sklearn.model_selection", "sklearn.feature_selection", "sklearn.metrics"},
			Type:          "MCQs",
			CorrectAnswer: "sklearn.preprocessing",
		},
		{
			Question:      "Which function is used to make predictions using a trained model in the caret package?",
			Choices:       []string{"fit()", "train()", "predict()", "evaluate()"},
			Type:          "MCQs",
			CorrectAnswer: "predict()",
		},
		{
			Question:      "What is autocorrelation in time series analysis?",
			Choices:       []string{"The correlation between different variables", "The correlation between successive observations", "The correlation between past and future values", "The correlation between outliers in the data"},
			Type:          "MCQs",
			CorrectAnswer: "The correlation between successive observations",
		},
	},
}

var IntermediateQuiz = Quiz{
	Topic:            "Machine Learning",
	Level:            LevelIntermediate,
	TotalQuestion:    20,
	PerQuestionScore: 5,
	Questions: []Question{
		{
			Question:      "Which of the following libraries is commonly used for implementing machine learning algorithms in Python?",
			Choices:       []string{"Matplotlib", "Seaborn", "scikit-learn", "PyTorch"},
			Type:          "MCQs",
			CorrectAnswer: "scikit-learn",
		},
		{
			Question:      "What is the main advantage of the XGBoost algorithm?",
			Choices:       []string{"It is only suitable for small datasets", "It cannot handle missing values", "It is an ensemble method that combines multiple weak learners", "It is computationally less efficient compared to other algorithms"},
			Type:          "MCQs",
			CorrectAnswer: "It is an ensemble method that combines multiple weak learners",
		},
		{
			Question:      "What is a common challenge in imbalanced classification problems?",
			Choices:       []string{"Overfitting", "Underfitting", "Class imbalance", "Feature engineering"},
			Type:          "MCQs",
			CorrectAnswer: "Class imbalance",
		},
		{
			Question:      "Which deep learning framework is known for its simplicity and ease of use, suitable for beginners?",
			Choices:       []string{"Keras", "PyTorch", "TensorFlow", "Theano"},
			Type:          "MCQs",
			CorrectAnswer: "Keras",
		},
		{
			Question:      "What is a key feature of PyTorch?",
			Choices:       []string{"It provides dynamic computational graphs", "It is primarily used for symbolic programming", "It is built on top of Theano", "It has limited support for GPU acceleration"},
			Type:          "MCQs",
			CorrectAnswer: "It provides dynamic computational graphs",
		},
		{
			Question:      "Which of the following tasks can be performed using OpenCV in machine learning?",
			Choices:       []string{"Object detection", "Text classification", "Speech recognition", "Graph-based clustering"},
			Type:          "MCQs",
			CorrectAnswer: "Object detection",
		},
		{
			Question:      "What is the goal of better deep learning techniques?",
			Choices:       []string{"Increasing model complexity", "Improving model interpretability", "Reducing training time", "Enhancing model performance and robustness"},
			Type:          "MCQs",
			CorrectAnswer: "Enhancing model performance and robustness",
		},
		{
			Question:      "What is ensemble learning in machine learning?",
			Choices:       []string{"Training multiple models separately and averaging their predictions", "Training a single model with multiple datasets", "Using a single learning algorithm to boost performance", "Utilizing multiple GPUs for parallel computation"},
			Type:          "MCQs",
			CorrectAnswer: "Training multiple models separately and averaging their predictions",
		},
		{
			Question:      "Which of the following is NOT a step in implementing machine learning algorithms in code?",
			Choices:       []string{"Data preprocessing", "Model evaluation", "Feature selection", "Model deployment"},
			Type:          "MCQs",
			CorrectAnswer: "Model deployment",
		},
		{
			Question:      "What is one of the main advantages of using XGBoost over traditional gradient boosting?",
			Choices:       []string{"XGBoost cannot handle missing values", "XGBoost is computationally slower", "XGBoost provides better regularization", "XGBoost is less flexible in handling different types of data"},
			Type:          "MCQs",
			CorrectAnswer: "XGBoost provides better regularization",
		},
		{
			Question:      "Which technique can be used to handle class imbalance in classification tasks?",
			Choices:       []string{"Overfitting", "Feature scaling", "Upsampling the minority class", "Decreasing the learning rate"},
			Type:          "MCQs",
			CorrectAnswer: "Upsampling the minority class",
		},
		{
			Question:      "Which deep learning framework emphasizes dynamic computation graphs and imperative programming?",
			Choices:       []string{"TensorFlow", "Keras", "PyTorch", "Theano"},
			Type:          "MCQs",
			CorrectAnswer: "PyTorch",
		},
		{
			Question:      "What is a common application of ML in OpenCV?",
			Choices:       []string{"Natural language processing", "Image processing and computer vision", "Speech recognition", "Time series analysis"},
			Type:          "MCQs",
			CorrectAnswer: "Image processing and computer vision",
		},
		{
			Question:      "What is the primary focus of better deep learning techniques?",
			Choices:       []string{"Improving hardware efficiency", "Enhancing model interpretability", "Optimizing loss functions", "Improving model performance and robustness"},
			Type:          "MCQs",
			CorrectAnswer: "Improving model performance and robustness",
		},
		{
			Question:      "What is the main advantage of ensemble learning?",
			Choices:       []string{"Simplifying model implementation", "Reducing computational complexity", "Improving model generalization and performance", "Increasing model interpretability"},
			Type:          "MCQs",
			CorrectAnswer: "Improving model generalization and performance",
		},
		{
			Question:      "What is one of the key steps in training a machine learning model?",
			Choices:       []string{"Feature deployment", "Model evaluation", "Data visualization", "Hyperparameter tuning"},
			Type:          "MCQs",
			CorrectAnswer: "Hyperparameter tuning",
		},
		{
			Question:      "Which technique is commonly used for handling imbalanced datasets?",
			Choices:       []string{"Random undersampling", "Data augmentation", "Feature scaling", "Increasing the learning rate"},
			Type:          "MCQs",
			CorrectAnswer: "Random undersampling",
		},
		{
			Question:      "What distinguishes ensemble learning from traditional machine learning approaches?",
			Choices:       []string{"Ensemble learning relies on unsupervised learning techniques", "Ensemble learning combines multiple models to improve performance", "Ensemble learning is more computationally intensive", "Ensemble learning requires larger datasets"},
			Type:          "MCQs",
			CorrectAnswer: "Ensemble learning combines multiple models to improve performance",
		},
		{
			Question:      "What is the role of feature engineering in machine learning?",
			Choices:       []string{"To deploy machine learning models", "To evaluate model performance", "To preprocess data for modeling", "To extract relevant features from raw data"},
			Type:          "MCQs",
			CorrectAnswer: "To extract relevant features from raw data",
		},
		{
			Question:      "What is the purpose of regularization techniques in machine learning?",
			Choices:       []string{"To increase model complexity", "To decrease model flexibility", "To reduce overfitting", "To amplify noise in the data"},
			Type:          "MCQs",
			CorrectAnswer: "To reduce overfitting",
		},
	},
}

var AdvanceQuiz = Quiz{
	Topic:            "Machine Learning",
	Level:            LevelAdvance,
	TotalQuestion:    20,
	PerQuestionScore: 5,
	Questions: []Question{
		{
			Question:      "What is the main advantage of Long Short-Term Memory (LSTM) networks over traditional recurrent neural networks (RNNs)?",
			Choices:       []string{"LSTMs can only handle short sequences of data", "LSTMs are less computationally efficient", "LSTMs can capture long-term dependencies in data", "LSTMs require fewer training iterations"},
			Type:          "MCQs",
			CorrectAnswer: "LSTMs can capture long-term dependencies in data",
		},
		{
			Question:      "Which natural language processing task involves predicting the next word in a sequence given the previous words?",
			Choices:       []string{"Text classification", "Named entity recognition", "Machine translation", "Language modeling"},
			Type:          "MCQs",
			CorrectAnswer: "Language modeling",
		},
		{
			Question:      "What is the primary goal of computer vision?",
			Choices:       []string{"Speech recognition", "Image classification", "Time series forecasting", "Natural language understanding"},
			Type:          "MCQs",
			CorrectAnswer: "Image classification",
		},
		{
			Question:      "What is the main advantage of using convolutional neural networks (CNNs) for time series analysis?",
			Choices:       []string{"CNNs automatically handle variable-length sequences", "CNNs can capture temporal dependencies in data", "CNNs are computationally less efficient", "CNNs are less susceptible to overfitting"},
			Type:          "MCQs",
			CorrectAnswer: "CNNs can capture temporal dependencies in data",
		},
		{
			Question:      "What is a key application of Generative Adversarial Networks (GANs) in machine learning?",
			Choices:       []string{"Image classification", "Time series analysis", "Data augmentation", "Speech recognition"},
			Type:          "MCQs",
			CorrectAnswer: "Data augmentation",
		},
		{
			Question:      "What is the purpose of attention mechanisms in deep learning models?",
			Choices:       []string{"To increase model complexity", "To reduce model interpretability", "To improve model performance on specific parts of the input", "To introduce randomness in model predictions"},
			Type:          "MCQs",
			CorrectAnswer: "To improve model performance on specific parts of the input",
		},
		{
			Question:      "What is a key component of Transformer models used in natural language processing?",
			Choices:       []string{"Convolutional layers", "Recurrent layers", "Attention mechanisms", "Pooling layers"},
			Type:          "MCQs",
			CorrectAnswer: "Attention mechanisms",
		},
		{
			Question:      "What distinguishes Long Short-Term Memory (LSTM) networks from traditional recurrent neural networks (RNNs)?",
			Choices:       []string{"LSTMs have a simpler architecture", "LSTMs can only process sequential data", "LSTMs can retain information over long sequences", "LSTMs are less susceptible to vanishing gradients"},
			Type:          "MCQs",
			CorrectAnswer: "LSTMs can retain information over long sequences",
		},
		{
			Question:      "Which machine learning task involves processing and understanding human language?",
			Choices:       []string{"Image classification", "Speech recognition", "Natural language processing", "Time series analysis"},
			Type:          "MCQs",
			CorrectAnswer: "Natural language processing",
		},
		{
			Question:      "What is the primary objective of computer vision?",
			Choices:       []string{"To analyze and interpret visual data", "To process and understand human language", "To recognize and classify speech signals", "To forecast future events based on historical data"},
			Type:          "MCQs",
			CorrectAnswer: "To analyze and interpret visual data",
		},
		{
			Question:      "What is the primary advantage of using Convolutional Neural Networks (CNNs) for image classification?",
			Choices:       []string{"They can process variable-length sequences", "They automatically extract relevant features from images", "They require fewer parameters compared to other models", "They are less computationally intensive"},
			Type:          "MCQs",
			CorrectAnswer: "They automatically extract relevant features from images",
		},
		{
			Question:      "What is the main purpose of using Generative Adversarial Networks (GANs) in machine learning?",
			Choices:       []string{"To improve model interpretability", "To generate realistic synthetic data", "To reduce computational complexity", "To perform dimensionality reduction"},
			Type:          "MCQs",
			CorrectAnswer: "To generate realistic synthetic data",
		},
		{
			Question:      "What is the role of attention mechanisms in deep learning models?",
			Choices:       []string{"To increase model complexity", "To reduce model interpretability", "To improve model performance on specific parts of the input", "To introduce randomness in model predictions"},
			Type:          "MCQs",
			CorrectAnswer: "To improve model performance on specific parts of the input",
		},
		{
			Question:      "What is a key component of Transformer models used in natural language processing?",
			Choices:       []string{"Convolutional layers", "Recurrent layers", "Attention mechanisms", "Pooling layers"},
			Type:          "MCQs",
			CorrectAnswer: "Attention mechanisms",
		},
		{
			Question:      "What distinguishes Long Short-Term Memory (LSTM) networks from traditional recurrent neural networks (RNNs)?",
			Choices:       []string{"LSTMs have a simpler architecture", "LSTMs can only process sequential data", "LSTMs can retain information over long sequences", "LSTMs are less susceptible to vanishing gradients"},
			Type:          "MCQs",
			CorrectAnswer: "LSTMs can retain information over long sequences",
		},
		{
			Question:      "Which machine learning task involves processing and understanding human language?",
			Choices:       []string{"Image classification", "Speech recognition", "Natural language processing", "Time series analysis"},
			Type:          "MCQs",
			CorrectAnswer: "Natural language processing",
		},
		{
			Question:      "What is the primary objective of computer vision?",
			Choices:       []string{"To analyze and interpret visual data", "To process and understand human language", "To recognize and classify speech signals", "To forecast future events based on historical data"},
			Type:          "MCQs",
			CorrectAnswer: "To analyze and interpret visual data",
		},
		{
			Question:      "How can CNNs and LSTMs be combined for time series analysis?",
			Choices:       []string{"CNN extracts features from each time step, then LSTM learns the temporal relationships", "CNN learns overall patterns, then LSTM predicts future values", "LSTM captures long-term trends, then CNN refines predictions for specific time points", "They cannot be effectively combined for time series tasks"},
			Type:          "MCQs",
			CorrectAnswer: "CNN extracts features from each time step, then LSTM learns the temporal relationships",
		},
		{
			// The published answer key ends with a period the choice lacks,
			// so this question can never be answered correctly. Kept as-is
			// to stay faithful to the course material.
			Question:      "What is a limitation of self-attention mechanisms in Transformers?",
			Choices:       []string{"They cannot capture hierarchical relationships in text", "They require large amounts of labeled training data", "They are computationally expensive for long sequences", "They are not effective for tasks beyond natural language processing"},
			Type:          "MCQs",
			CorrectAnswer: "They are computationally expensive for long sequences.",
		},
		{
			Question:      "During training, what is the role of the discriminator in a Generative Adversarial Network (GAN)?",
			Choices:       []string{"Provides labels for the training data", "Generates new data samples", "Evaluates the realism of generated data.s", "Optimizes the hyperparameters of the generator"},
			Type:          "MCQs",
			CorrectAnswer: "Generates new data samples",
		},
	},
}

var AssessmentQuiz = Quiz{
	Topic:         "Machine Learning Readiness Assessment Quiz",
	Level:         LevelAssessment,
	TotalQuestion: 10,
	Questions: []Question{
		{
			Question:      "What is machine learning?",
			Choices:       []string{"A type of data entry", "A way to teach computers to make decisions using data", "A method for building websites", "A tool for creating animations"},
			Type:          "MCQs",
			CorrectAnswer: "A way to teach computers to make decisions using data",
		},
		{
			Question:      "Which of these is a common type of machine learning?",
			Choices:       []string{"Automated drawing", "Supervised learning", "Video editing", "Website hosting"},
			Type:          "MCQs",
			CorrectAnswer: "Supervised learning",
		},
		{
			Question:      "What is a dataset?",
			Choices:       []string{"A collection of data used for training models", "A type of software application", "A set of rules for coding", "A group of web pages"},
			Type:          "MCQs",
			CorrectAnswer: "A collection of data used for training models",
		},
		{
			Question:      "What is the purpose of training a model in machine learning?",
			Choices:       []string{"To predict outcomes based on data", "To create graphics", "To format text", "To manage files"},
			Type:          "MCQs",
			CorrectAnswer: "To predict outcomes based on data",
		},
		{
			Question:      "Which of these is an example of a machine learning model?",
			Choices:       []string{"Word processor", "Linear regression", "Web browser", "Spreadsheet"},
			Type:          "MCQs",
			CorrectAnswer: "Linear regression",
		},
		{
			Question:      "What is overfitting in machine learning?",
			Choices:       []string{"A model that performs well on training data but poorly on new data", "A type of graph", "A way to clean data", "A method for storing files"},
			Type:          "MCQs",
			CorrectAnswer: "A model that performs well on training data but poorly on new data",
		},
		{
			Question:      "What does \"k\" represent in k-means clustering?",
			Choices:       []string{"The number of clusters", "The size of the dataset", "The number of data points", "The depth of a decision tree"},
			Type:          "MCQs",
			CorrectAnswer: "The number of clusters",
		},
		{
			Question:      "What is cross-validation used for?",
			Choices:       []string{"To evaluate the models performance on different data splits", "To build a website", "To edit a video", "To write a program"},
			Type:          "MCQs",
			CorrectAnswer: "To evaluate the models performance on different data splits",
		},
		{
			Question:      "Which of these is used to evaluate a classification model?",
			Choices:       []string{"Accuracy", "Pixels per inch", "Page load time", "Word count"},
			Type:          "MCQs",
			CorrectAnswer: "Accuracy",
		},
		{
			Question:      "What is a neural network?",
			Choices:       []string{"A model inspired by the human brain", "A type of internet connection", "A system for sending emails", "A method for storing images"},
			Type:          "MCQs",
			CorrectAnswer: "A model inspired by the human brain",
		},
	},
}

// Quizzes indexes every question bank by level.
var Quizzes = map[Level]*Quiz{
	LevelFoundation:   &FoundationQuiz,
	LevelBeginner:     &BeginnerQuiz,
	LevelIntermediate: &IntermediateQuiz,
	LevelAdvance:      &AdvanceQuiz,
	LevelAssessment:   &AssessmentQuiz,
}
